package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Long:  `Display every template in the store, with descriptions from the store manifest where present.`,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	_, store, err := openStore()
	if err != nil {
		return err
	}

	ids, err := store.List()
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No templates available")
		return nil
	}

	descriptions, err := store.Descriptions()
	if err != nil {
		return err
	}

	successColor := color.New(color.FgGreen, color.Bold)
	metaColor := color.New(color.FgYellow)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	successColor.Fprintln(out, "Available Templates:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-----------")
	for _, id := range ids {
		fmt.Fprintf(w, "%s\t%s\n", id, descriptions[id])
	}
	w.Flush()

	fmt.Fprintln(out)
	metaColor.Fprintf(out, "Store: %s\n", store.Root())
	metaColor.Fprintln(out, "Use 'pygen render <template-id> --var name=value' to render a template directly")
	fmt.Fprintln(out)

	return nil
}
