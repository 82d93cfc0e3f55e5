package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request telemetry",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		logs, err := s.LLMLogs().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query logs: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %-9s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Cost", "OK")
		fmt.Println(strings.Repeat("─", 108))

		var totalCost float64
		for _, l := range logs {
			if purpose != "" && l.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !l.Success {
				ok = "✗"
			}
			totalCost += l.CostUSD
			fmt.Printf("%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %-9s  %s\n",
				l.ID,
				l.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				l.Purpose,
				truncate(l.Model, 28),
				l.InputTokens,
				l.OutputTokens,
				l.LatencyMs,
				formatCost(l.CostUSD),
				ok,
			)
		}

		fmt.Println(strings.Repeat("─", 108))
		fmt.Printf("Estimated total cost: %s\n", formatCost(totalCost))
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. evaluation)")

	llmCmd.AddCommand(llmListCmd)
}
