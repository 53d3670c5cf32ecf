package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"TradeEdge/internal/batch"
	"TradeEdge/internal/config"
	"TradeEdge/internal/report"
	"TradeEdge/internal/table"
)

var rootCmd = &cobra.Command{
	Use:   "edge <input.csv>",
	Short: "Score trade candidates: P_win, expected value, take/skip",
	Long: `Estimate a win probability and expected value (in R-multiples) for each
trade candidate in a CSV file, and classify it take_trade or skip_trade.

The input CSV must contain these columns (extra columns pass through):
  buy_ratings            Number of buy ratings from analysts
  total_ratings          Total number of analyst ratings
  smart_score            Smart Score (0-10)
  net_options_sentiment  Net Options Sentiment (0-100)
  net_social_sentiment   Net Social Sentiment (0-100)
  upside_breakout        Upside Breakout score (0-100)
  win_r                  Average R-multiple on wins
  loss_r                 Average R-multiple on losses (typically negative)`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

var (
	outputPath string
	configPath string
)

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output CSV file (optional)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	rootCmd.AddCommand(watchCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	t, err := table.ReadFile(args[0])
	if err != nil {
		return err
	}
	res, err := batch.ScoreTable(t, cfg.Options())
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := res.Table.WriteFile(outputPath); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", outputPath)
	}

	rule := strings.Repeat("=", 80)
	fmt.Println("\nExpected Value Results:")
	fmt.Println(rule)
	fmt.Print(report.FormatTable(res.Table))
	fmt.Println(rule)
	fmt.Println()
	fmt.Print(report.FormatSummary(report.Summarize(res.Scores), cfg.EVThreshold))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
