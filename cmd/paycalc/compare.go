package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/krisrowe/pay-calc-sub001/internal/compare"
	"github.com/krisrowe/pay-calc-sub001/internal/model"
	"github.com/krisrowe/pay-calc-sub001/internal/report"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the actual filed outcome against the projection",
		Long: `Compare the refund or amount owed on the filed return against the
computed projection. Unless --calc-refund or --calc-owed overrides it, the
computed side comes from running the projection over imported totals.`,
		RunE: runCompare,
	}

	cmd.Flags().Float64("actual-refund", 0, "refund on the filed return")
	cmd.Flags().Float64("actual-owed", 0, "amount owed on the filed return")
	cmd.Flags().Float64("calc-refund", 0, "override the computed refund")
	cmd.Flags().Float64("calc-owed", 0, "override the computed amount owed")
	cmd.Flags().Float64("tolerance", compare.DefaultTolerance, "match tolerance in dollars")
	cmd.Flags().String("overpayment", "spouse", "parties checked for SS overpayment (primary, spouse, both, none)")
	cmd.Flags().Bool("zero-fill-missing", false, "project a missing party as zero income instead of failing")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	actual := model.FiledResult{}
	actual.Refund, _ = cmd.Flags().GetFloat64("actual-refund")
	actual.Owed, _ = cmd.Flags().GetFloat64("actual-owed")

	calc := model.FiledResult{}
	calc.Refund, _ = cmd.Flags().GetFloat64("calc-refund")
	calc.Owed, _ = cmd.Flags().GetFloat64("calc-owed")

	if calc.Refund == 0 && calc.Owed == 0 &&
		!cmd.Flags().Changed("calc-refund") && !cmd.Flags().Changed("calc-owed") {
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
		calc = model.FiledResult{Refund: result.Refund(), Owed: result.Owed()}
	}

	tolerance, _ := cmd.Flags().GetFloat64("tolerance")
	summary := compare.CompareWithTolerance(actual, calc, tolerance)

	slog.Info(report.RenderComparison(summary))
	return nil
}
