package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"RestaurantFinder-App/internal/bootstrap"
	"RestaurantFinder-App/internal/config"
	"RestaurantFinder-App/internal/infrastructure/agent"
)

var (
	state   string
	timeout time.Duration
	asJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "restaurant-cli",
	Short: "州ごとのレストラン検索CLI",
}

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "州のバウンディングボックスを4分割してレストランのプレイスIDを取得する",
	RunE:  runFind,
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "エージェントに公開しているツール定義を表示する",
	RunE:  runTools,
}

func init() {
	findCmd.Flags().StringVarP(&state, "state", "s", "", "州名 (例: california)")
	findCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "検索全体のタイムアウト")
	findCmd.Flags().BoolVar(&asJSON, "json", false, "結果をJSONで出力する")
	findCmd.MarkFlagRequired("state")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(toolsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	components, cleanup, err := bootstrap.BuildFinder(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := components.Finder.FindRestaurantsByState(ctx, state)
	if err != nil {
		return fmt.Errorf("検索失敗: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "State: %s (quadrants: %d, failed: %d)\n", result.State, result.QuadrantCount, result.FailedQuadrants)
	for _, id := range result.PlaceIDs {
		fmt.Fprintln(cmd.OutOrStdout(), id)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Total: %d\n", len(result.PlaceIDs))
	return nil
}

func runTools(cmd *cobra.Command, args []string) error {
	tool := agent.NewRestaurantTool(nil)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode([]agent.ToolDefinition{tool.Definition()})
}
