package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	createPackageAuthor string
	createPackageOutput string
)

// NewCreatePackageCommand creates the create-package command
func NewCreatePackageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-package [name]",
		Short: "Create a Python package skeleton",
		Long: `Create a Python package: a directory named after the package holding
an __init__.py and a main.py, both rendered from the package template.

If no name is provided, you will be prompted to enter one.

Examples:
  pygen create-package mypackage
  pygen create-package mypackage --author "Ada Lovelace"
  pygen create-package mypackage --output ./src`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreatePackage,
	}

	cmd.Flags().StringVar(&createPackageAuthor, "author", "", "Author name (default: author from config)")
	cmd.Flags().StringVarP(&createPackageOutput, "output", "o", "", "Output directory (default: output_dir from config)")

	return cmd
}

func runCreatePackage(cmd *cobra.Command, args []string) error {
	name, err := nameFromArgsOrPrompt(args, "Package name:")
	if err != nil {
		return err
	}

	cfg, gen, store, err := newGenerator()
	if err != nil {
		return err
	}

	author := createPackageAuthor
	if author == "" {
		author = cfg.Author
	}
	output := createPackageOutput
	if output == "" {
		output = cfg.OutputDir
	}

	written, err := gen.CreatePackage(name, author, output)
	if err != nil {
		reportTemplateError(cmd, store, err)
		return err
	}

	infoColor := color.New(color.FgCyan)
	successColor := color.New(color.FgGreen, color.Bold)

	for _, path := range written {
		infoColor.Fprintf(cmd.OutOrStdout(), "  ✓ Created %s\n", path)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	successColor.Fprintf(cmd.OutOrStdout(), "✓ Created package '%s'\n", name)

	return nil
}

// nameFromArgsOrPrompt takes the name from the positional argument or asks
// for it interactively.
func nameFromArgsOrPrompt(args []string, message string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	var name string
	prompt := &survey.Input{Message: message}
	if err := survey.AskOne(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return name, nil
}
