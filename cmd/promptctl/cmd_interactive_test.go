package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-optimizer/backend/internal/features/generation/domain"
)

func interactiveApp(t *testing.T) (*cobra.Command, *rootOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	flags := workspace(t)
	opts := &rootOptions{configPath: flags[1], dataDir: flags[3]}

	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	return cmd, opts, &out, &errOut
}

func TestRunInteractive_Generates(t *testing.T) {
	cmd, opts, out, errOut := interactiveApp(t)
	application, err := opts.loadApp()
	require.NoError(t, err)

	err = runInteractive(cmd, application, &interactiveAnswers{
		Request: domain.GenerationRequest{
			Goal:        "Write a blog post about cats",
			TargetModel: "unknown-model",
			Style:       string(domain.StyleConcise),
		},
	})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Generated prompt")
	assert.Contains(t, out.String(), "Write a blog post about cats Please provide a concise answer in 3-5 sentences.")
	assert.Empty(t, errOut.String())
}

func TestRunInteractive_TestsWhenAsked(t *testing.T) {
	cmd, opts, _, errOut := interactiveApp(t)
	application, err := opts.loadApp()
	require.NoError(t, err)

	err = runInteractive(cmd, application, &interactiveAnswers{
		Request: domain.GenerationRequest{Goal: "Explain recursion", TargetModel: "chatgpt"},
		Test:    true,
	})
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "Error testing prompt:")
}

func TestRunInteractive_EmptyGoal(t *testing.T) {
	cmd, opts, _, _ := interactiveApp(t)
	application, err := opts.loadApp()
	require.NoError(t, err)

	err = runInteractive(cmd, application, &interactiveAnswers{})
	assert.EqualError(t, err, "goal is required")
}
