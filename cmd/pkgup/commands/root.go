// Package commands implements the CLI commands for the pkgup tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pkgup/internal/app"
	"go.trai.ch/pkgup/internal/build"
)

// CLI represents the command line interface for pkgup.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	// configure adjusts the logger from global flags before a command runs.
	configure func(verbose, json bool)
}

// Application represents the application logic interface.
type Application interface {
	Update(ctx context.Context, dir string, opts app.UpdateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application, configure func(verbose, json bool)) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pkgup",
		Short:         "Update project dependencies and schedule their migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Log as JSON lines")

	c := &CLI{
		app:       a,
		rootCmd:   rootCmd,
		configure: configure,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.configure == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		json, _ := cmd.Flags().GetBool("json")
		c.configure(verbose, json)
	}

	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
