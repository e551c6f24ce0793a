package bgg

import (
	"context"
	"fmt"
	"strings"

	"bgg_sheet_sync/internal/pricing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Session is the browser automation capability a lookup drives. It is
// satisfied by *browser.Session; tests substitute a scripted fake.
type Session interface {
	Navigate(url string) error
	TypeInto(selector, text string) error
	PressEnter() error
	WaitForSelector(selector string) error
	Click(selector string) error
	WaitForNavigation() error
	HTML() (string, error)
	Alive() bool
}

// Lookup stages, advanced only when the corresponding capability call
// succeeds. A NavigationError reports the stage it died in.
type stage string

const (
	stageSearching     stage = "searching"
	stageResultsLoaded stage = "results-loaded"
	stageDetailLoaded  stage = "detail-loaded"
	stageExtracted     stage = "extracted"
)

// NavigationError marks a lookup that failed to reach an extracted detail
// page: no search results, or a timeout loading them. It is fatal to one
// title only; the orchestrator logs it and moves on.
type NavigationError struct {
	Title string
	Stage stage
	Err   error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("lookup of %q failed at stage %s: %v", e.Title, e.Stage, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// Lookup resolves a game title to one GameRecord by driving the shared
// browser session through search, result selection, and detail extraction.
type Lookup struct {
	session Session
	baseURL string
	retail  pricing.Strategy
}

func NewLookup(session Session, baseURL string) *Lookup {
	return &Lookup{
		session: session,
		baseURL: strings.TrimRight(baseURL, "/"),
		retail:  pricing.Lowest,
	}
}

// WithRetailStrategy swaps the retail price heuristic (default: lowest
// listed price).
func (l *Lookup) WithRetailStrategy(s pricing.Strategy) *Lookup {
	l.retail = s
	return l
}

// Lookup submits title to the site search, opens the first result, and
// assembles a fully populated GameRecord from the freshly loaded detail page.
// Missing fields surface as sentinels inside the record, never as an error.
// A *NavigationError means this one title could not be resolved; any other
// error means the browser session itself is gone.
func (l *Lookup) Lookup(ctx context.Context, title string) (GameRecord, error) {
	log.Debug().Str("title", title).Msg("Starting game lookup")

	current := stageSearching
	fail := func(err error) error {
		if !l.session.Alive() {
			return fmt.Errorf("browser session lost at stage %s for %q: %w", current, title, err)
		}
		return &NavigationError{Title: title, Stage: current, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return GameRecord{}, err
	}

	if err := l.session.Navigate(l.baseURL); err != nil {
		return GameRecord{}, fail(err)
	}
	if err := l.session.TypeInto(SearchInput, title); err != nil {
		return GameRecord{}, fail(err)
	}
	if err := l.session.PressEnter(); err != nil {
		return GameRecord{}, fail(err)
	}
	if err := l.session.WaitForSelector(SearchResultLink); err != nil {
		return GameRecord{}, fail(fmt.Errorf("no search results: %w", err))
	}
	current = stageResultsLoaded

	if err := ctx.Err(); err != nil {
		return GameRecord{}, err
	}

	if err := l.session.Click(SearchResultLink); err != nil {
		return GameRecord{}, fail(err)
	}
	if err := l.session.WaitForNavigation(); err != nil {
		return GameRecord{}, fail(err)
	}
	if err := l.session.WaitForSelector(DetailHeader); err != nil {
		return GameRecord{}, fail(fmt.Errorf("detail page did not load: %w", err))
	}
	current = stageDetailLoaded

	html, err := l.session.HTML()
	if err != nil {
		return GameRecord{}, fail(err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return GameRecord{}, fail(err)
	}

	fields := ExtractFields(doc)
	prices := pricing.DeriveWith(PriceSamples(doc), l.retail)
	current = stageExtracted

	record := GameRecord{
		Rank:            fields.Rank,
		Rating:          fields.Rating,
		Players:         FormatPlayerRange(fields.MinPlayers, fields.MaxPlayers),
		BestPlayers:     fields.BestPlayers,
		PlayingTime:     fields.PlayingTime,
		Weight:          fields.Weight,
		SuggestedRetail: prices.SuggestedRetail,
		UsedBuyPrice:    prices.UsedBuyPrice,
		UsedSellPrice:   prices.UsedSellPrice,
	}

	log.Info().
		Str("title", title).
		Str("stage", string(current)).
		Str("rank", record.Rank).
		Str("rating", record.Rating).
		Float64("suggested_retail", record.SuggestedRetail).
		Msg("Game lookup complete")

	return record, nil
}
