package main

import (
	"fmt"

	"github.com/spf13/cobra"

	configapp "prompt-optimizer/backend/internal/features/config/application"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default template tables and config file",
		Long: `Create the data directory with prompt_templates.json and best_practices.json and write
the config file if it does not exist. Existing files are kept unless --overwrite is set.
The API key is never written to the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := configapp.NewConfigService(opts.configService()).InitWorkspace(opts.configPath, overwrite)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.ConfigSaved {
				fmt.Fprintf(out, "wrote %s\n", opts.configPath) //nolint:errcheck
			}
			for _, f := range result.WrittenFiles {
				fmt.Fprintf(out, "wrote %s\n", f) //nolint:errcheck
			}
			if !result.ConfigSaved && len(result.WrittenFiles) == 0 {
				fmt.Fprintln(out, styleMuted.Render("workspace already initialised in "+result.DataDir+" (use --overwrite to reset)")) //nolint:errcheck
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing tables and config")

	return cmd
}
