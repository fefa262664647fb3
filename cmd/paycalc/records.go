package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/krisrowe/pay-calc-sub001/internal/cli"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List imported pay records",
		RunE:  runRecords,
	}

	cmd.Flags().IntP("year", "y", 0, "year to list (default: configured tax year)")

	return cmd
}

func runRecords(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = viper.GetInt("tax.year")
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.GetPayRecordsByYear(ctx, year)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		slog.Info(cli.FormatWarning(fmt.Sprintf("no pay records for %d; run 'paycalc import' first", year)))
		return nil
	}

	var b strings.Builder
	b.WriteString("Date        Type      Current      YTD\n")
	for _, r := range records {
		date := r.RawDate
		if r.DateValid {
			date = r.PayDate.Format("2006-01-02")
		}
		fmt.Fprintf(&b, "%-11s %-8s %9.2f %9.2f\n",
			date, r.PayType, r.CurrentGross(), r.YTDGross())
	}

	slog.Info(cli.RenderBox(fmt.Sprintf("%d Pay Records", year), b.String()))
	return nil
}
