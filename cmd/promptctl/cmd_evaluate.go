package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	evaluationapp "prompt-optimizer/backend/internal/features/evaluation/application"
	"prompt-optimizer/backend/internal/features/evaluation/domain"
)

const criterionWidth = 14

func newEvaluateCommand() *cobra.Command {
	var (
		file     string
		criteria []string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate [prompt]",
		Short: "Score a prompt on clarity, specificity, context and constraints",
		Long: `Score a prompt with lexical heuristics. Each criterion is in [0, 1] and the overall
score is their mean. No model call is made and no template tables are needed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := readPrompt(cmd, args, file)
			if err != nil {
				return err
			}

			result, err := evaluationapp.NewEvaluationService().Evaluate(prompt, criteria)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printScoreTable(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the prompt from a txt, md or pdf file")
	cmd.Flags().StringSliceVar(&criteria, "criteria", nil, "Criteria to score (default: all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func printScoreTable(w io.Writer, result *domain.EvaluationResult) {
	rule := strings.Repeat("─", criterionWidth+6)
	fmt.Fprintf(w, "%s %s\n%s\n", padRight("Criterion", criterionWidth), "Score", rule) //nolint:errcheck

	for _, c := range domain.DefaultCriteria {
		score, ok := result.Scores[c]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", padRight(string(c), criterionWidth), scoreStyle(score).Render(formatScore(score))) //nolint:errcheck
	}
	fmt.Fprintf(w, "%s\n%s %s\n", rule, padRight("overall", criterionWidth), scoreStyle(result.OverallScore).Render(formatScore(result.OverallScore))) //nolint:errcheck

	if len(result.Suggestions) == 0 {
		return
	}
	fmt.Fprintln(w) //nolint:errcheck
	printHeading(w, "Suggestions")
	for _, s := range result.Suggestions {
		fmt.Fprintf(w, "  • %s\n", s) //nolint:errcheck
	}
}
