package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prompt-optimizer/backend/internal/features/optimization/domain"
)

func newOptimizeCommand(opts *rootOptions) *cobra.Command {
	var (
		file string
		req  domain.RewriteRequest
	)

	cmd := &cobra.Command{
		Use:   "optimize [prompt]",
		Short: "Rewrite a prompt for a target model",
		Long: `Rewrite a prompt at one of three levels:

  minimal   collapse whitespace and fix spacing before punctuation
  balanced  add a role and output format when missing, bulletize long sentences
  maximum   match the closest template and let the model rewrite the prompt

The prompt comes from the argument, --file (txt, md, pdf) or stdin.`,
		Example: `  promptctl optimize "tell me about dogs" --model chatgpt
  cat draft.md | promptctl optimize --level minimal`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := readPrompt(cmd, args, file)
			if err != nil {
				return err
			}
			req.Prompt = prompt

			application, err := opts.loadApp()
			if err != nil {
				return err
			}

			result, err := application.Optimizer.Optimize(cmd.Context(), &req)
			if err != nil {
				return err
			}
			if result.Degraded {
				printNote(cmd.ErrOrStderr(), result.OptimizedPrompt)
				return nil
			}
			if result.MatchedTemplate != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), styleMuted.Render("matched template: "+result.MatchedTemplate)) //nolint:errcheck
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.OptimizedPrompt) //nolint:errcheck
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the prompt from a txt, md or pdf file")
	cmd.Flags().StringVarP(&req.TargetModel, "model", "m", "default", "Target model key")
	cmd.Flags().StringVarP(&req.OptimizationLevel, "level", "l", string(domain.LevelBalanced), "Optimization level: minimal, balanced or maximum")

	return cmd
}
