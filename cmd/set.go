package cmd

import (
	"github.com/spf13/cobra"

	"weles-ai/internal/app"
)

func newSetCmd() *cobra.Command {
	set := &cobra.Command{
		Use:   "set",
		Short: "Change stored settings",
	}
	set.AddCommand(&cobra.Command{
		Use:   "key <api-key>",
		Short: "Store the API key in ~/.weles-ai/.env",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunSetKey(cmd.Context(), args[0])
		},
	})
	return set
}
