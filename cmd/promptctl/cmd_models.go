package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const modelKeyWidth = 12

func newModelsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List target model keys and the gateway models they map to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.loadApp()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeading(out, "Provider: "+application.Gateway.Provider)
			fmt.Fprintf(out, "%s %s\n", padRight("Target", modelKeyWidth), "Gateway model") //nolint:errcheck
			for _, key := range application.Store.Models() {
				fmt.Fprintf(out, "%s %s\n", padRight(key, modelKeyWidth), application.Mapping.Resolve(key)) //nolint:errcheck
			}
			return nil
		},
	}
}
