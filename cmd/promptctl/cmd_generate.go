package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prompt-optimizer/backend/internal/features/generation/domain"
)

func newGenerateCommand(opts *rootOptions) *cobra.Command {
	req := &domain.GenerationRequest{}
	var runTest bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a prompt for a target model from a goal",
		Long: `Fill the target model's template with the goal and optional context, then append
the style hint and any requested format sections (persona, constraints, examples, standard).`,
		Example: `  promptctl generate --goal "summarize quarterly sales" --model claude --format persona,constraints`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.loadApp()
			if err != nil {
				return err
			}

			prompt, err := application.Generation.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), prompt) //nolint:errcheck

			if runTest {
				return printTestResult(cmd, application.Tester, prompt, req.TargetModel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Goal, "goal", "g", "", "What the prompt should accomplish (required)")
	cmd.Flags().StringVarP(&req.TargetModel, "model", "m", "default", "Target model key (see 'promptctl models')")
	cmd.Flags().StringVarP(&req.Context, "context", "c", "", "Additional context for the goal")
	cmd.Flags().StringVarP(&req.Style, "style", "s", string(domain.StyleDetailed), "Hint style: detailed, step-by-step or concise")
	cmd.Flags().StringSliceVarP(&req.Formats, "format", "f", nil, "Format sections to add: persona, constraints, examples, standard")
	cmd.Flags().BoolVar(&runTest, "test", false, "Send the generated prompt to the model afterwards")

	return cmd
}
