package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the interview question bank",
}

var bankSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter question bank and demo course",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Seed(context.Background()); err != nil {
			return fmt.Errorf("seed data: %w", err)
		}
		fmt.Println("Seed data loaded.")
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list <domain>",
	Short: "List bank questions for a domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		questions, err := s.Questions().List(context.Background(), strings.ToUpper(args[0]))
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		if len(questions) == 0 {
			fmt.Println("No questions found. Run `techwell bank seed` first.")
			return nil
		}

		fmt.Printf("%-14s  %-20s  %s\n", "Difficulty", "Topic", "Question")
		fmt.Println(strings.Repeat("─", 96))
		for _, q := range questions {
			fmt.Printf("%-14s  %-20s  %s\n", q.Difficulty, q.Topic, q.Content)
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankSeedCmd)
	bankCmd.AddCommand(bankListCmd)
}
