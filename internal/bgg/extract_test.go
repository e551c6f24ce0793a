package bgg

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailPageHTML = `
<html><body>
  <div class="game-header-title-info"><h1><a>Wingspan</a></h1></div>
  <div class="game-header-ranks">
    <span class="rank-value"><a> 27 </a></span>
  </div>
  <div class="rating-overall">
    <span class="rating-overall-value">8.1</span>
  </div>
  <div class="gameplay-players-range"><span min="1" max="5">1&ndash;5 Players</span></div>
  <div class="gameplay-players-community">
    <span class="gameplay-players-value">3</span>
  </div>
  <div class="gameplay-time"><span class="gameplay-time-value">40-70 Min</span></div>
  <div class="gameplay-weight"><span class="gameplay-weight-value">2.46</span></div>
  <div class="marketplace-listings">
    <span class="listing-price">$49.99</span>
    <span class="listing-price">Sold out</span>
    <span class="listing-price">$38.00</span>
  </div>
</body></html>`

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractFields(t *testing.T) {
	fields := ExtractFields(parseDoc(t, detailPageHTML))

	assert.Equal(t, "27", fields.Rank)
	assert.Equal(t, "8.1", fields.Rating)
	assert.Equal(t, 1, fields.MinPlayers)
	assert.Equal(t, 5, fields.MaxPlayers)
	assert.Equal(t, "3", fields.BestPlayers)
	assert.Equal(t, "40-70 Min", fields.PlayingTime)
	assert.Equal(t, "2.46", fields.Weight)
}

func TestExtractFieldsEmptyPage(t *testing.T) {
	fields := ExtractFields(parseDoc(t, "<html><body></body></html>"))

	assert.Equal(t, SentinelRank, fields.Rank)
	assert.Equal(t, SentinelRating, fields.Rating)
	assert.Equal(t, 0, fields.MinPlayers)
	assert.Equal(t, 0, fields.MaxPlayers)
	assert.Equal(t, SentinelBestPlayers, fields.BestPlayers)
	assert.Equal(t, SentinelPlayingTime, fields.PlayingTime)
	assert.Equal(t, SentinelWeight, fields.Weight)
}

func TestExtractFieldsIndependentAbsence(t *testing.T) {
	// Rank present, everything else missing: one field's absence never
	// disturbs another field's extraction.
	html := `<html><body>
      <div class="game-header-ranks"><span class="rank-value"><a>512</a></span></div>
    </body></html>`
	fields := ExtractFields(parseDoc(t, html))

	assert.Equal(t, "512", fields.Rank)
	assert.Equal(t, SentinelRating, fields.Rating)
	assert.Equal(t, SentinelWeight, fields.Weight)
}

func TestExtractFieldsBlankElementIsSentinel(t *testing.T) {
	html := `<html><body>
      <div class="rating-overall"><span class="rating-overall-value">   </span></div>
    </body></html>`
	fields := ExtractFields(parseDoc(t, html))

	assert.Equal(t, SentinelRating, fields.Rating)
}

func TestExtractFieldsNonNumericPlayerAttr(t *testing.T) {
	html := `<html><body>
      <div class="gameplay-players-range"><span min="two" max="4">players</span></div>
    </body></html>`
	fields := ExtractFields(parseDoc(t, html))

	assert.Equal(t, 0, fields.MinPlayers)
	assert.Equal(t, 4, fields.MaxPlayers)
}

func TestPriceSamples(t *testing.T) {
	samples := PriceSamples(parseDoc(t, detailPageHTML))
	assert.Equal(t, []string{"$49.99", "Sold out", "$38.00"}, samples)
}

func TestPriceSamplesEmptyPage(t *testing.T) {
	assert.Empty(t, PriceSamples(parseDoc(t, "<html><body></body></html>")))
}
