package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Goden-Gun/facecodes/pkg/codes"
	"github.com/Goden-Gun/facecodes/pkg/status"
)

func newDescribeCmd(a *app) *cobra.Command {
	var vendorCode int32
	cmd := &cobra.Command{
		Use:   "describe (error|acquired) <code-or-symbol>",
		Short: "Describe a single error or acquisition code",
		Long: `Describe resolves a code the way a client would display it.

Unknown numeric codes are reported with a generic message and a warning in the
log, as a consumer would handle a newer producer. --vendor-code folds a vendor
detail sent alongside FACE_ERROR_VENDOR or FACE_ACQUIRED_VENDOR into the vendor
range before resolving.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"error", "acquired"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var withVendor *int32
			if cmd.Flags().Changed("vendor-code") {
				withVendor = &vendorCode
			}
			rep, err := a.describe(cmd, args[0], args[1], withVendor)
			if err != nil {
				return err
			}
			return a.printReport(cmd.OutOrStdout(), rep)
		},
	}
	cmd.Flags().Int32Var(&vendorCode, "vendor-code", 0, "vendor detail reported with the vendor sentinel")
	return cmd
}

func (a *app) describe(cmd *cobra.Command, namespace, text string, vendorCode *int32) (status.Report, error) {
	ctx := cmd.Context()
	switch namespace {
	case "error", "errors":
		raw, err := parseRaw(text, func(s string) (int32, error) {
			c, err := codes.ParseErrorCode(s)
			return int32(c), err
		})
		if err != nil {
			return status.Report{}, err
		}
		if vendorCode != nil {
			raw = int32(codes.ClientErrorCode(codes.ErrorCode(raw), *vendorCode))
		}
		return a.resolver.ErrorReport(ctx, raw), nil
	case "acquired", "acquisition":
		raw, err := parseRaw(text, func(s string) (int32, error) {
			c, err := codes.ParseAcquisitionCode(s)
			return int32(c), err
		})
		if err != nil {
			return status.Report{}, err
		}
		if vendorCode != nil {
			raw = int32(codes.ClientAcquisitionCode(codes.AcquisitionCode(raw), *vendorCode))
		}
		return a.resolver.AcquisitionReport(ctx, raw), nil
	default:
		return status.Report{}, fmt.Errorf("unknown namespace %q, want error or acquired", namespace)
	}
}

// parseRaw accepts any decimal value so unknown codes still reach the resolver;
// everything else goes through the symbolic parser.
func parseRaw(text string, parseSymbol func(string) (int32, error)) (int32, error) {
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return int32(n), nil
	}
	return parseSymbol(text)
}

func (a *app) printReport(w io.Writer, rep status.Report) error {
	if a.output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	fmt.Fprintf(w, "%s %d (%s, %s)\n", rep.Symbol, rep.Value, rep.Namespace, rep.Class)
	fmt.Fprintln(w, rep.Text)
	if rep.Lockout {
		fmt.Fprintf(w, "lockout: temporary lockouts last %s after %d failed attempts\n", codes.LockoutDuration, codes.LockoutThreshold)
	}
	return nil
}
