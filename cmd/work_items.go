package cmd

import (
	"github.com/spf13/cobra"

	"weles-ai/internal/app"
)

func newStatusCmd(f *rootFlags) *cobra.Command {
	var ids []string
	c := &cobra.Command{
		Use:   "status",
		Short: "Show the status of one or more work items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunStatus(cmd.Context(), f.global(cmd), ids)
		},
	}
	c.Flags().StringArrayVar(&ids, "id", nil, "work item id (repeatable)")
	return c
}

func newRetrieveCmd(f *rootFlags) *cobra.Command {
	var opts app.RetrieveOptions
	c := &cobra.Command{
		Use:   "retrieve",
		Short: "Retrieve a generated deliverable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunRetrieve(cmd.Context(), f.global(cmd), opts)
		},
	}
	c.Flags().StringVar(&opts.ID, "id", "", "work item id")
	c.Flags().StringVar(&opts.FileName, "file-name", "", "deliverable file name reported by status")
	c.Flags().StringVarP(&opts.OutDir, "out", "o", "", "save the deliverable in this directory instead of printing it")
	return c
}

func newListCmd(f *rootFlags) *cobra.Command {
	var filters string
	c := &cobra.Command{
		Use:   "list",
		Short: "List work items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunList(cmd.Context(), f.global(cmd), filters)
		},
	}
	c.Flags().StringVar(&filters, "filters", "", "list filter as JSON or a JSON file")
	return c
}

func newWaitCmd(f *rootFlags) *cobra.Command {
	var opts app.WaitOptions
	c := &cobra.Command{
		Use:   "wait",
		Short: "Poll a work item until it is DONE or ERROR",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunWait(cmd.Context(), f.global(cmd), opts)
		},
	}
	c.Flags().StringVar(&opts.ID, "id", "", "work item id")
	c.Flags().DurationVar(&opts.Interval, "interval", 0, "poll interval (default from config)")
	c.Flags().DurationVar(&opts.Timeout, "timeout", 0, "give up after this long (default from config)")
	return c
}
