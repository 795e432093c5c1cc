package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gatewayapp "prompt-optimizer/backend/internal/features/modelgateway/application"
)

func newTestCommand(opts *rootOptions) *cobra.Command {
	var (
		file        string
		targetModel string
	)

	cmd := &cobra.Command{
		Use:   "test [prompt]",
		Short: "Send a prompt to the model mapped to the target and print the reply",
		Long: `Resolve the target model through the model mapping and print the model's continuation.
Gateway failures are reported as a note on stderr and do not fail the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt, err := readPrompt(cmd, args, file)
			if err != nil {
				return err
			}
			application, err := opts.loadApp()
			if err != nil {
				return err
			}
			return printTestResult(cmd, application.Tester, prompt, targetModel)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read the prompt from a txt, md or pdf file")
	cmd.Flags().StringVarP(&targetModel, "model", "m", "default", "Target model key")

	return cmd
}

func printTestResult(cmd *cobra.Command, tester gatewayapp.TesterService, prompt, targetModel string) error {
	result, err := tester.TestPrompt(cmd.Context(), prompt, targetModel)
	if err != nil {
		return err
	}
	if result.Degraded {
		printNote(cmd.ErrOrStderr(), result.Output)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out) //nolint:errcheck
	printHeading(out, fmt.Sprintf("Response from %s (%s)", result.Model, result.TargetModel))
	fmt.Fprintln(out, result.Output) //nolint:errcheck
	return nil
}
