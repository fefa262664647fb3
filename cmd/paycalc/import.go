package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/krisrowe/pay-calc-sub001/internal/cli"
	"github.com/krisrowe/pay-calc-sub001/internal/common"
	"github.com/krisrowe/pay-calc-sub001/internal/loader"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <files...>",
		Short: "Import pay-record or annual-totals extracts",
		Long: `Import JSON extracts into the local database.

By default each file is treated as a pay-record extract (a single record or
an array of records). With --party the file is treated as that party's
annual totals instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("party", "", "treat the file as annual totals for this party (primary, spouse)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	party, _ := cmd.Flags().GetString("party")
	if party != "" {
		if len(args) != 1 {
			return fmt.Errorf("--party takes exactly one totals file, got %d", len(args))
		}
		totals, err := loader.LoadPartyTotalsFile(args[0])
		if err != nil {
			return common.NewUserError("failed to load party totals", err)
		}
		if err := store.SavePartyTotals(ctx, party, totals); err != nil {
			return common.NewUserError("failed to save party totals", err)
		}
		slog.Info(cli.FormatSuccess(fmt.Sprintf("imported annual totals for %s", party)))
		return nil
	}

	bar := progressbar.Default(int64(len(args)), "importing")

	loaded, inserted := 0, 0
	for _, path := range args {
		records, err := loader.LoadPayRecordFile(path)
		if err != nil {
			// One bad extract doesn't abort the batch.
			common.LogError(err, "skipping extract", common.Fields{"file": path})
			_ = bar.Add(1)
			continue
		}

		n, err := store.SavePayRecords(ctx, records)
		if err != nil {
			return common.NewUserError("failed to save pay records", err)
		}
		loaded += len(records)
		inserted += n
		_ = bar.Add(1)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf(
		"imported %d record(s) from %d file(s); %d duplicate(s) skipped",
		inserted, len(args), loaded-inserted)))
	return nil
}
