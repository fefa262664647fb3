package main

import (
	"fmt"
	"log/slog"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/krisrowe/pay-calc-sub001/internal/cli"
	"github.com/krisrowe/pay-calc-sub001/internal/report"
)

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the year's combined tax outcome",
		Long: `Compute a combined two-party tax projection from imported annual totals:
taxable income, the per-bracket breakdown, withholding, any Social Security
overpayment, and the net refund or amount owed.`,
		RunE: runProject,
	}

	cmd.Flags().String("format", "table", "output format (table, csv, json)")
	cmd.Flags().String("overpayment", "spouse", "parties checked for SS overpayment (primary, spouse, both, none)")
	cmd.Flags().Bool("zero-fill-missing", false, "project a missing party as zero income instead of failing")

	return cmd
}

func runProject(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	scopeFlag, _ := cmd.Flags().GetString("overpayment")
	scope, err := parseOverpaymentScope(scopeFlag)
	if err != nil {
		return err
	}
	zeroFill, _ := cmd.Flags().GetBool("zero-fill-missing")

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	result, err := runProjection(ctx, store, scope, zeroFill)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table":
		slog.Info(cli.FormatTitle("Projecting the year's combined taxes..."))
		slog.Info(report.RenderProjection(result))
	case "csv":
		if err := report.ProjectionCSV(os.Stdout, result); err != nil {
			return err
		}
	case "json":
		data, err := gojson.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode projection: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("invalid format %q (want table, csv or json)", format)
	}

	return nil
}
