package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pygen-dev/pygen/pkg/generator"
)

var (
	createClassModule string
	createClassOutput string
	createClassParams string
	createClassBody   string
)

// NewCreateClassCommand creates the create-class command
func NewCreateClassCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-class [name]",
		Short: "Create a Python class file",
		Long: `Create a Python class file from the class template. The module filename
is derived by snake-casing the class name unless --module is given.

Constructor parameters and body are substituted verbatim; pygen does not
validate the injected code.

Examples:
  pygen create-class Order
  pygen create-class Order --module order_model
  pygen create-class Order --constructor-params ", total" --constructor-body "        self.total = total"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCreateClass,
	}

	cmd.Flags().StringVarP(&createClassModule, "module", "m", "", "Module name (default: snake_cased class name)")
	cmd.Flags().StringVarP(&createClassOutput, "output", "o", "", "Output directory (default: output_dir from config)")
	cmd.Flags().StringVar(&createClassParams, "constructor-params", "", "Constructor parameter list, inserted after self")
	cmd.Flags().StringVar(&createClassBody, "constructor-body", "", "Constructor body (default: an indented pass)")

	return cmd
}

func runCreateClass(cmd *cobra.Command, args []string) error {
	name, err := nameFromArgsOrPrompt(args, "Class name:")
	if err != nil {
		return err
	}

	cfg, gen, store, err := newGenerator()
	if err != nil {
		return err
	}

	output := createClassOutput
	if output == "" {
		output = cfg.OutputDir
	}

	path, err := gen.CreateClass(generator.ClassOptions{
		Name:              name,
		Module:            createClassModule,
		OutputDir:         output,
		ConstructorParams: createClassParams,
		ConstructorBody:   createClassBody,
	})
	if err != nil {
		reportTemplateError(cmd, store, err)
		return err
	}

	successColor := color.New(color.FgGreen, color.Bold)
	successColor.Fprintf(cmd.OutOrStdout(), "✓ Created class '%s' at %s\n", name, path)

	return nil
}
