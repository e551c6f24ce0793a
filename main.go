package main

import (
	"context"

	"bgg_sheet_sync/internal/app"
	"bgg_sheet_sync/internal/bgg"
	"bgg_sheet_sync/internal/browser"
	"bgg_sheet_sync/internal/processing"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	if err := run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Sync run aborted")
	}
}

// run owns the browser session so teardown is guaranteed even when the run
// aborts on a session-level failure.
func run(ctx context.Context) error {
	cfg := app.LoadConfig()
	store := app.InitializeStore(ctx, cfg)
	notifier := app.InitializeNotificationClient()

	session, err := browser.New(cfg.BrowserOptions)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Browser session teardown reported errors")
		}
	}()

	lookup := bgg.NewLookup(session, cfg.BaseURL)

	summary, err := processing.Run(ctx, store, lookup, store)
	notifier.NotifySummary(ctx, summary)
	if err != nil {
		return err
	}

	log.Info().
		Int("processed", summary.Processed).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("Done")
	return nil
}
