// Package processing drives one sync run: read the pending titles, look each
// one up in the browser, write the result back to its row.
package processing

import (
	"context"
	"errors"

	"bgg_sheet_sync/internal/bgg"
	"bgg_sheet_sync/internal/config"
	"bgg_sheet_sync/internal/retry"
	"bgg_sheet_sync/internal/sheets"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TitleRowReader supplies the sheet's title rows, in physical order.
type TitleRowReader interface {
	ReadTitleRows(ctx context.Context) ([]sheets.TitleRow, error)
}

// RecordRowWriter persists one record into its row's write range.
type RecordRowWriter interface {
	WriteRecordRow(ctx context.Context, rowIndex int, record bgg.GameRecord) error
}

// Looker resolves one title to a record against the shared browser session.
type Looker interface {
	Lookup(ctx context.Context, title string) (bgg.GameRecord, error)
}

// resilience holds the retry presets for sheet I/O; tests swap in fast ones.
var resilience = config.DefaultResilienceConfig

// Failure records one row the run could not complete.
type Failure struct {
	RowIndex int
	Title    string
	Reason   string
}

// Summary reports how a run went. Processed + Skipped + Failed covers every
// row that was read before the run ended.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
	Failures  []Failure
}

// Run executes one full sync. Titles are read once, eagerly, then processed
// strictly in row order: the browser session is single-instance and
// non-reentrant, so one title's lookup-and-write completes before the next
// begins. A failed lookup or write costs only its own row; losing the browser
// session aborts the run with the rows not yet reached left unmodified.
func Run(ctx context.Context, source TitleRowReader, lookup Looker, sink RecordRowWriter) (Summary, error) {
	runLog := log.With().Str("run_id", uuid.NewString()).Logger()

	rows, err := retry.WithRetry(ctx, resilience.SheetRead, func(ctx context.Context) ([]sheets.TitleRow, error) {
		return source.ReadTitleRows(ctx)
	})
	if err != nil {
		return Summary{}, err
	}
	runLog.Info().Int("rows", len(rows)).Msg("Read title rows, starting sync")

	var summary Summary
	for _, row := range rows {
		if row.Title == "" {
			runLog.Debug().Int("row", row.RowIndex).Msg("Skipping blank title")
			summary.Skipped++
			continue
		}

		record, err := lookup.Lookup(ctx, row.Title)
		if err != nil {
			var navErr *bgg.NavigationError
			if errors.As(err, &navErr) {
				recordFailure(&summary, runLog, row, navErr.Error())
				continue
			}
			// Not a per-title failure: the browser resource itself is gone.
			runLog.Error().Err(err).Int("row", row.RowIndex).Str("title", row.Title).Msg("Aborting run")
			return summary, err
		}

		_, err = retry.WithRetry(ctx, resilience.SheetWrite, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, sink.WriteRecordRow(ctx, row.RowIndex, record)
		})
		if err != nil {
			recordFailure(&summary, runLog, row, err.Error())
			continue
		}

		summary.Processed++
		runLog.Info().
			Int("row", row.RowIndex).
			Str("title", row.Title).
			Msg("Row synced")
	}

	runLog.Info().
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Sync run complete")

	return summary, nil
}

func recordFailure(summary *Summary, runLog zerolog.Logger, row sheets.TitleRow, reason string) {
	summary.Failed++
	summary.Failures = append(summary.Failures, Failure{
		RowIndex: row.RowIndex,
		Title:    row.Title,
		Reason:   reason,
	})
	runLog.Warn().
		Int("row", row.RowIndex).
		Str("title", row.Title).
		Str("reason", reason).
		Msg("Row failed")
}
