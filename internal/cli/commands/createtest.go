package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	createTestModule string
	createTestOutput string
)

// NewCreateTestCommand creates the create-test command
func NewCreateTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-test [name]",
		Short: "Create a pytest skeleton for a class",
		Long: `Create a test file for a class from the test template. The file is named
test_<module>.py, where the module is derived by snake-casing the class
name unless --module is given.

Examples:
  pygen create-test Order
  pygen create-test Order --module order_model`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreateTest,
	}

	cmd.Flags().StringVarP(&createTestModule, "module", "m", "", "Module name (default: snake_cased class name)")
	cmd.Flags().StringVarP(&createTestOutput, "output", "o", "", "Output directory (default: output_dir from config)")

	return cmd
}

func runCreateTest(cmd *cobra.Command, args []string) error {
	name, err := nameFromArgsOrPrompt(args, "Class name:")
	if err != nil {
		return err
	}

	cfg, gen, store, err := newGenerator()
	if err != nil {
		return err
	}

	output := createTestOutput
	if output == "" {
		output = cfg.OutputDir
	}

	path, err := gen.CreateTest(name, createTestModule, output)
	if err != nil {
		reportTemplateError(cmd, store, err)
		return err
	}

	successColor := color.New(color.FgGreen, color.Bold)
	successColor.Fprintf(cmd.OutOrStdout(), "✓ Created test file for '%s' at %s\n", name, path)

	return nil
}
