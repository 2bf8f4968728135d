package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pygen-dev/pygen/pkg/templates"
)

var (
	renderVars []string
	renderOut  string
)

// NewRenderCommand creates the render command
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <template-id>",
		Short: "Render a template with explicit variables",
		Long: `Render any stored template with an explicit variable mapping. The result
is printed to stdout, or written to a file with --out (overwriting any
existing file).

A 'date' variable is injected automatically when not supplied.

Examples:
  pygen render python/class.py --var class_name=Order --var module_name=order \
    --var constructor_params= --var "constructor_body=        pass"
  pygen render python/test.py --var class_name=Order --var module_name=order --out test_order.py`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}

	cmd.Flags().StringArrayVar(&renderVars, "var", nil, "Variable binding as name=value (repeatable)")
	cmd.Flags().StringVar(&renderOut, "out", "", "Write the result to this path instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	id := args[0]

	vars := make(map[string]string, len(renderVars))
	for _, binding := range renderVars {
		name, value, ok := strings.Cut(binding, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid --var %q: expected name=value", binding)
		}
		vars[name] = value
	}

	_, store, err := openStore()
	if err != nil {
		return err
	}
	engine := templates.NewEngine(store)

	if renderOut != "" {
		if err := engine.Create(id, renderOut, vars); err != nil {
			reportTemplateError(cmd, store, err)
			return err
		}
		successColor := color.New(color.FgGreen, color.Bold)
		successColor.Fprintf(cmd.OutOrStdout(), "✓ Rendered %s to %s\n", id, renderOut)
		return nil
	}

	out, err := engine.Generate(id, vars)
	if err != nil {
		reportTemplateError(cmd, store, err)
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}
