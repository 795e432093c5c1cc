package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"prompt-optimizer/backend/internal/app"
	"prompt-optimizer/backend/internal/features/generation/domain"
)

// interactiveAnswers is what the form collects.
type interactiveAnswers struct {
	Request domain.GenerationRequest
	Test    bool
}

func newInteractiveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Build a prompt step by step in a terminal form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.loadApp()
			if err != nil {
				return err
			}

			answers, err := runPromptForm(cmd.InOrStdin(), cmd.OutOrStdout(), application.Store.Models())
			if err != nil {
				return err
			}
			return runInteractive(cmd, application, answers)
		},
	}
}

// runPromptForm asks for the goal, target model, style, context, format sections and
// whether to test the result.
func runPromptForm(in io.Reader, out io.Writer, models []string) (*interactiveAnswers, error) {
	answers := &interactiveAnswers{}
	req := &answers.Request
	style := string(domain.StyleDetailed)

	modelOptions := huh.NewOptions(models...)
	styleOptions := make([]huh.Option[string], 0, len(domain.Styles))
	for _, s := range domain.Styles {
		styleOptions = append(styleOptions, huh.NewOption(string(s), string(s)))
	}
	formatOptions := make([]huh.Option[string], 0, len(domain.Formats))
	for _, f := range domain.Formats {
		formatOptions = append(formatOptions, huh.NewOption(string(f), string(f)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Goal").
				Description("What should the prompt accomplish?").
				Placeholder("Summarize a research paper for a general audience").
				Value(&req.Goal).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("goal is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Target model").
				Options(modelOptions...).
				Value(&req.TargetModel),
			huh.NewSelect[string]().
				Title("Style").
				Options(styleOptions...).
				Value(&style),
			huh.NewText().
				Title("Context").
				Description("Optional background for the model").
				Value(&req.Context),
			huh.NewMultiSelect[string]().
				Title("Format sections").
				Options(formatOptions...).
				Value(&req.Formats),
			huh.NewConfirm().
				Title("Test the prompt with the model?").
				Value(&answers.Test),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("interactive form failed: %w", err)
	}

	req.Style = style
	return answers, nil
}

func runInteractive(cmd *cobra.Command, application *app.App, answers *interactiveAnswers) error {
	prompt, err := application.Generation.Generate(cmd.Context(), &answers.Request)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out) //nolint:errcheck
	printHeading(out, "Generated prompt")
	fmt.Fprintln(out, prompt) //nolint:errcheck

	if !answers.Test {
		return nil
	}
	return printTestResult(cmd, application.Tester, prompt, answers.Request.TargetModel)
}
