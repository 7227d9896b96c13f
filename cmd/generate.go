package cmd

import (
	"github.com/spf13/cobra"

	"weles-ai/internal/app"
)

func newHLDCmd(f *rootFlags) *cobra.Command {
	var opts app.HLDOptions
	c := &cobra.Command{
		Use:     "hld",
		Aliases: []string{"high-level-design"},
		Short:   "Generate a high level design document",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunHLD(cmd.Context(), f.global(cmd), opts)
		},
	}
	c.Flags().StringVar(&opts.Context, "context", "", "project context as JSON or a JSON file")
	c.Flags().StringVar(&opts.Destination, "destination", "", "destination as JSON or a JSON file")
	c.Flags().StringVar(&opts.Stories, "stories", "", "stories as a JSON array or a JSON file")
	c.Flags().StringVar(&opts.Remotes, "remotes", "", "remote credentials as a JSON array or a JSON file")
	c.Flags().StringArrayVar(&opts.StoryFiles, "story-file", nil, "markdown file or directory to add as file stories (repeatable)")
	return c
}

func newReverseCmd(f *rootFlags) *cobra.Command {
	var opts app.ReverseOptions
	c := &cobra.Command{
		Use:     "reverse",
		Aliases: []string{"reverse-eng"},
		Short:   "Generate a reverse engineering report",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunReverse(cmd.Context(), f.global(cmd), opts)
		},
	}
	c.Flags().StringVar(&opts.Context, "context", "", "project context as JSON or a JSON file")
	c.Flags().StringVar(&opts.Destination, "destination", "", "destination as JSON or a JSON file")
	c.Flags().StringVar(&opts.Codes, "codes", "", "code inputs as a JSON array or a JSON file")
	c.Flags().StringVar(&opts.Remotes, "remotes", "", "remote credentials as a JSON array or a JSON file")
	c.Flags().StringArrayVar(&opts.CodePaths, "code-path", nil, ".zip file or directory to add as an archive (repeatable)")
	return c
}
