package commands

import (
	"errors"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pygen-dev/pygen/internal/cli/config"
	"github.com/pygen-dev/pygen/internal/cli/ui"
	"github.com/pygen-dev/pygen/pkg/generator"
	"github.com/pygen-dev/pygen/pkg/templates"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// templatesDir overrides the configured template store location.
var templatesDir string

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pygen",
		Short: "Template-based Python code scaffolding",
		Long: color.CyanString(`pygen - Python Boilerplate Generator

pygen substitutes variables into text templates to scaffold Python
packages, classes, and test files.

Templates live in a per-user store ($HOME/.pygen/templates by default)
and use $name / ${name} placeholders. Generated files overwrite existing
ones without warning.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "", "Template store directory (default: templates_dir from config)")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewCreatePackageCommand())
	rootCmd.AddCommand(NewCreateClassCommand())
	rootCmd.AddCommand(NewCreateTestCommand())
	rootCmd.AddCommand(NewRenderCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("pygen version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// openStore loads the configuration and opens the template store, honoring
// the --templates-dir override.
func openStore() (*config.Config, *templates.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	dir := cfg.TemplatesDir
	if templatesDir != "" {
		dir = templatesDir
	}

	store, err := templates.Open(dir)
	if err != nil {
		return nil, nil, err
	}

	return cfg, store, nil
}

// newGenerator opens the template store and wraps it in a generator.
func newGenerator() (*config.Config, *generator.Generator, *templates.Store, error) {
	cfg, store, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, generator.New(store), store, nil
}

// reportTemplateError prints a rich block for template-not-found errors,
// with fuzzy suggestions drawn from the store, before the error propagates
// to the standard exit path.
func reportTemplateError(cmd *cobra.Command, store *templates.Store, err error) {
	var notFound *templates.TemplateNotFoundError
	if !errors.As(err, &notFound) {
		return
	}

	var suggestions []string
	if ids, listErr := store.List(); listErr == nil {
		suggestions = ui.Suggest(notFound.ID, ids, 3)
	}

	ui.WriteError(cmd.ErrOrStderr(), ui.ErrorOptions{
		Context:     "TEMPLATE NOT FOUND",
		Problem:     notFound.ID,
		Suggestions: suggestions,
		HelpCommands: []string{
			"See all templates: pygen list",
		},
	})
}
