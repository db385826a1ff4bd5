package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/facecodes/pkg/codes"
)

// listRow is one registry entry as printed by the list command.
type listRow struct {
	Namespace codes.Namespace `json:"namespace"`
	Value     int32           `json:"value"`
	Symbol    string          `json:"symbol"`
	Message   string          `json:"message"`
	Internal  bool            `json:"internal,omitempty"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "list [errors|acquired]",
		Short:     "List core codes of one or both namespaces",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"errors", "acquired"},
		RunE: func(cmd *cobra.Command, args []string) error {
			which := ""
			if len(args) == 1 {
				which = args[0]
			}
			return a.runList(cmd.OutOrStdout(), which)
		},
	}
}

func (a *app) runList(w io.Writer, which string) error {
	var rows []listRow
	if which == "" || which == "errors" {
		for _, e := range codes.ErrorRegistry() {
			rows = append(rows, listRow{codes.NamespaceError, int32(e.Code), e.Symbol, e.Message, e.Internal})
		}
		rows = append(rows, listRow{codes.NamespaceError, codes.VendorBase, codes.ErrorVendorBase.String(), codes.VendorErrorMessage, true})
	}
	if which == "" || which == "acquired" {
		for _, e := range codes.AcquisitionRegistry() {
			rows = append(rows, listRow{codes.NamespaceAcquisition, int32(e.Code), e.Symbol, e.Message, e.Internal})
		}
		rows = append(rows, listRow{codes.NamespaceAcquisition, codes.VendorBase, codes.AcquiredVendorBase.String(), codes.VendorAcquisitionMessage, true})
	}

	if a.output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAMESPACE\tVALUE\tSYMBOL\tMESSAGE")
	fmt.Fprintln(tw, "---------\t-----\t------\t-------")
	for _, r := range rows {
		symbol := r.Symbol
		if r.Internal {
			symbol += " (internal)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", r.Namespace, r.Value, symbol, r.Message)
	}
	return tw.Flush()
}
