package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"weles-ai/internal/app"
)

var errNoCommand = errors.New("no command given")

type rootFlags struct {
	apiKey      string
	baseURL     string
	sslMode     string
	configPath  string
	verbose     bool
	logFile     string
	showVersion bool
}

func (f *rootFlags) global(cmd *cobra.Command) app.GlobalOptions {
	return app.GlobalOptions{
		ConfigPath: f.configPath,
		APIKey:     f.apiKey,
		BaseURL:    f.baseURL,
		SSLMode:    f.sslMode,
		Verbose:    f.verbose,
		LogFile:    f.logFile,
		Stdout:     cmd.OutOrStdout(),
	}
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "weles-ai <command>",
		Short: "Submit and track Weles AI document generation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.showVersion {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			_ = cmd.Help()
			return errNoCommand
		},
	}
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.CompletionOptions.HiddenDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&f.apiKey, "api-key", "", "API key (or WELES_AI_API_KEY)")
	pf.StringVar(&f.baseURL, "base-url", "", "API base URL (or WELES_AI_BASE_URL)")
	pf.StringVar(&f.sslMode, "ssl-mode", "", "TLS mode: strict or insecure (or WELES_AI_SSL_MODE)")
	pf.StringVar(&f.configPath, "config", "", "config file path (default ~/.weles-ai/config.yaml)")
	pf.BoolVar(&f.verbose, "verbose", false, "log debug events and HTTP traces as JSON to stderr")
	pf.StringVar(&f.logFile, "log-file", "", "also write logs to this file")
	root.Flags().BoolVarP(&f.showVersion, "version", "v", false, "print version information")

	root.AddCommand(
		newHLDCmd(f),
		newReverseCmd(f),
		newStatusCmd(f),
		newRetrieveCmd(f),
		newListCmd(f),
		newWaitCmd(f),
		newSetCmd(),
		newVersionCmd(),
	)
	return root
}

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		return 1
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, err)
	}
	return exitCode(err)
}

func Execute() {
	// A .env in the working directory fills variables not set already.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if code != 0 {
		os.Exit(code)
	}
}
