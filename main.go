// Package main implements a CLI tool to edit properties and bump the Version
// of MSBuild project files, one file or a whole directory tree at a time.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	csproj "github.com/bcomnes/csproj/pkg"
)

const usageText = `Edits a property of MSBuild project files in place, or bumps one component of
their Version property. <path> is a project file or a directory that is searched
recursively for project files (default extension: .csproj).

Examples:
  csproj ./App/App.csproj bump-version-patch
  csproj ./src bump-version-minor
  csproj ./src modify-property --name TargetFramework --value net8.0
  csproj --dry ./src bump-version-major

Actions:
  modify-property      Replace the value of an existing property (--name, --value)
  bump-version-major   Increment MAJOR of the Version property
  bump-version-minor   Increment MINOR of the Version property
  bump-version-patch   Increment PATCH of the Version property`

// errFilesFailed marks a run where at least one file could not be read or written.
var errFilesFailed = errors.New("some project files could not be processed")

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "csproj [flags] <path> <action>",
		Short:   "Edit MSBuild project properties and bump versions",
		Long:    usageText,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("<path> and <action> positional arguments are required")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return runAction(cfg, args[0], args[1], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.String("name", "", "Name of the property to modify (bump actions always use Version)")
	flags.String("value", "", "New value of the property")
	flags.String("ext", csproj.DefaultExtension, "Project file extension searched for in directories")
	flags.Bool("dry", false, "Report the changes without saving any file")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("config", "", "Config file providing defaults for the flags above")

	return cmd
}

func runAction(cfg config, path, actionArg string, stdout, stderr io.Writer) error {
	action, err := csproj.ParseAction(actionArg)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.Verbose)
	outcomes, err := csproj.Run(csproj.Options{
		Path:      path,
		Action:    action,
		Name:      cfg.Name,
		Value:     cfg.Value,
		Extension: cfg.Extension,
		DryRun:    cfg.Dry,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if len(outcomes) == 0 {
		fmt.Fprintf(stdout, "No %s files found at %s.\n", cfg.Extension, path)
		return nil
	}
	if err := csproj.WriteReport(stdout, outcomes, cfg.Dry); err != nil {
		return err
	}
	if summary := csproj.Summarize(outcomes); summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d failed", errFilesFailed, summary.Failed, summary.Total)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "csproj"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
