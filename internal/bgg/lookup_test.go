package bgg

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession scripts the automation capability for lookup tests.
type fakeSession struct {
	html     string
	waitErrs map[string]error
	navErr   error
	dead     bool
	calls    []string
}

func (f *fakeSession) Navigate(url string) error {
	f.calls = append(f.calls, "navigate")
	return f.navErr
}

func (f *fakeSession) TypeInto(selector, text string) error {
	f.calls = append(f.calls, "type:"+text)
	return nil
}

func (f *fakeSession) PressEnter() error {
	f.calls = append(f.calls, "enter")
	return nil
}

func (f *fakeSession) WaitForSelector(selector string) error {
	f.calls = append(f.calls, "wait:"+selector)
	return f.waitErrs[selector]
}

func (f *fakeSession) Click(selector string) error {
	f.calls = append(f.calls, "click:"+selector)
	return nil
}

func (f *fakeSession) WaitForNavigation() error {
	f.calls = append(f.calls, "waitnav")
	return nil
}

func (f *fakeSession) HTML() (string, error) {
	f.calls = append(f.calls, "html")
	return f.html, nil
}

func (f *fakeSession) Alive() bool {
	return !f.dead
}

func TestLookupSuccess(t *testing.T) {
	session := &fakeSession{html: detailPageHTML}
	lookup := NewLookup(session, "https://boardgamegeek.com/")

	record, err := lookup.Lookup(context.Background(), "Wingspan")
	require.NoError(t, err)

	assert.Equal(t, "27", record.Rank)
	assert.Equal(t, "8.1", record.Rating)
	assert.Equal(t, "1, 2, 3, 4, 5", record.Players)
	assert.Equal(t, "3", record.BestPlayers)
	assert.Equal(t, "40-70 Min", record.PlayingTime)
	assert.Equal(t, "2.46", record.Weight)
	assert.Equal(t, 38.0, record.SuggestedRetail)
	assert.Equal(t, "9.50", record.UsedBuyPrice)
	assert.Equal(t, "19.00", record.UsedSellPrice)

	// Search, select first result, await detail, snapshot once.
	assert.Equal(t, []string{
		"navigate",
		"type:Wingspan",
		"enter",
		"wait:" + SearchResultLink,
		"click:" + SearchResultLink,
		"waitnav",
		"wait:" + DetailHeader,
		"html",
	}, session.calls)
}

func TestLookupMissingFieldsStillSucceeds(t *testing.T) {
	session := &fakeSession{html: "<html><body></body></html>"}
	lookup := NewLookup(session, "https://boardgamegeek.com")

	record, err := lookup.Lookup(context.Background(), "Obscure Game")
	require.NoError(t, err)

	assert.Equal(t, SentinelRank, record.Rank)
	assert.Equal(t, SentinelPlayers, record.Players)
	assert.Equal(t, 0.0, record.SuggestedRetail)
	assert.Equal(t, "0.00", record.UsedBuyPrice)
	assert.Equal(t, "0.00", record.UsedSellPrice)
}

func TestLookupNoSearchResults(t *testing.T) {
	session := &fakeSession{
		waitErrs: map[string]error{SearchResultLink: errors.New("timeout 30000ms exceeded")},
	}
	lookup := NewLookup(session, "https://boardgamegeek.com")

	_, err := lookup.Lookup(context.Background(), "No Such Game")
	require.Error(t, err)

	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, "No Such Game", navErr.Title)
	assert.Equal(t, stageSearching, navErr.Stage)
}

func TestLookupDetailPageTimeout(t *testing.T) {
	session := &fakeSession{
		waitErrs: map[string]error{DetailHeader: errors.New("timeout 30000ms exceeded")},
	}
	lookup := NewLookup(session, "https://boardgamegeek.com")

	_, err := lookup.Lookup(context.Background(), "Wingspan")

	var navErr *NavigationError
	require.ErrorAs(t, err, &navErr)
	assert.Equal(t, stageResultsLoaded, navErr.Stage)
}

func TestLookupDeadSessionIsNotNavigationError(t *testing.T) {
	session := &fakeSession{
		navErr: errors.New("browser has been closed"),
		dead:   true,
	}
	lookup := NewLookup(session, "https://boardgamegeek.com")

	_, err := lookup.Lookup(context.Background(), "Wingspan")
	require.Error(t, err)

	var navErr *NavigationError
	assert.False(t, errors.As(err, &navErr))
}

func TestLookupCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := &fakeSession{html: detailPageHTML}
	lookup := NewLookup(session, "https://boardgamegeek.com")

	_, err := lookup.Lookup(ctx, "Wingspan")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, session.calls)
}
