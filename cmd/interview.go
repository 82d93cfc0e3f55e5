package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techwell/techwell/internal/interview"
	"github.com/techwell/techwell/internal/llm"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a mock interview session",
	Long:  "Runs an interactive mock interview. Questions adapt to how the previous answer scored; answers are evaluated by an LLM when one is configured, otherwise by a built-in heuristic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		domain, _ := cmd.Flags().GetString("domain")
		turns, _ := cmd.Flags().GetInt("turns")
		heuristic, _ := cmd.Flags().GetBool("heuristic")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()

		var evaluator interview.Evaluator = interview.LengthEvaluator{}
		if !heuristic {
			provider, err := llm.NewProviderFromEnv(ctx, s.LLMLogs())
			if err != nil {
				fmt.Fprintf(os.Stderr, "No LLM provider configured (%v); using heuristic scoring.\n", err)
			} else {
				evaluator = interview.NewLLMEvaluator(provider, interview.DefaultEvaluatorConfig())
			}
		}

		svc := interview.NewService(interview.NewSelector(s.Questions()), evaluator, s.Interviews())

		sess, err := svc.Begin(ctx, userID, strings.ToUpper(domain))
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		fmt.Printf("Mock interview — %s. Type your answer and press Enter; /quit to stop.\n\n", sess.Domain)

		reader := bufio.NewScanner(os.Stdin)
		reader.Buffer(make([]byte, 64*1024), 64*1024)

		for i := 0; i < turns; i++ {
			sel, err := svc.Ask(ctx, sess)
			if err != nil {
				return fmt.Errorf("pick question: %w", err)
			}

			fmt.Printf("Q%d [%s / %s]: %s\n> ", i+1, sel.Difficulty, sel.Topic, sel.Question)
			if !reader.Scan() {
				break
			}
			answer := strings.TrimSpace(reader.Text())
			if answer == "/quit" {
				break
			}

			eval, err := svc.Submit(ctx, sess, answer)
			if err != nil {
				return fmt.Errorf("evaluate answer: %w", err)
			}
			fmt.Printf("\nScore: %d/100 (%s)\n%s\n\n", eval.Score, eval.Sentiment, eval.Feedback)
		}

		if err := svc.End(ctx, sess); err != nil {
			return fmt.Errorf("end session: %w", err)
		}

		history := sess.History()
		if len(history) == 0 {
			fmt.Println("Session ended with no answers.")
			return nil
		}
		total := 0
		for _, t := range history {
			total += t.Score
		}
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Answered %d question(s), average score %d/100.\n", len(history), total/len(history))
		return nil
	},
}

func init() {
	interviewCmd.Flags().StringP("user", "u", "local", "User ID for the session")
	interviewCmd.Flags().StringP("domain", "d", "TECHNOLOGY", "Interview domain (e.g. TECHNOLOGY, BEHAVIORAL)")
	interviewCmd.Flags().IntP("turns", "n", 5, "Maximum number of questions")
	interviewCmd.Flags().Bool("heuristic", false, "Force the built-in heuristic evaluator")
}
