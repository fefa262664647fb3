package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/krisrowe/pay-calc-sub001/internal/cli"
	"github.com/krisrowe/pay-calc-sub001/internal/config"
	"github.com/krisrowe/pay-calc-sub001/internal/gaps"
	"github.com/krisrowe/pay-calc-sub001/internal/report"
)

func gapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Analyze stored pay records for missing periods",
		Long: `Scan the year's pay records for missing, spurious or boundary gaps.

Start and middle gaps indicate genuinely missing data; end gaps are warnings
only, since the year may simply be incomplete so far. Employer transitions
(a YTD reset at a new employer) are suppressed from gap reporting.`,
		RunE: runGaps,
	}

	cmd.Flags().IntP("year", "y", 0, "year to analyze (default: configured tax year)")
	cmd.Flags().String("as-of", "", "analysis reference date, YYYY-MM-DD (default: today)")

	return cmd
}

func runGaps(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = viper.GetInt("tax.year")
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if asOf, _ := cmd.Flags().GetString("as-of"); asOf != "" {
		parsed, err := time.Parse("2006-01-02", asOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q: %w", asOf, err)
		}
		today = parsed
	}

	slog.Info(cli.FormatTitle(fmt.Sprintf("Analyzing pay records for %d...", year)))

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.GetPayRecordsByYear(ctx, year)
	if err != nil {
		return err
	}

	gapReport := gaps.Detect(records, year, today, config.LoadGapConfig())

	// Independent of the date-gap scan: the earliest regular record should
	// start the year's YTD accumulation.
	firstPeriodMsg := ""
	if ok, msg := gaps.CheckFirstPeriod(records); !ok {
		firstPeriodMsg = msg
	}

	slog.Info(report.RenderGapReport(gapReport, firstPeriodMsg))
	return nil
}
