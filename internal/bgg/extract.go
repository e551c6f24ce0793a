package bgg

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// ExtractFields reads every target field out of a loaded detail-page snapshot.
// Each field resolves independently: a missing or blank element yields that
// field's sentinel (0 for the numeric player bounds) and never disturbs the
// other fields. The snapshot is queried once per field, never re-fetched.
func ExtractFields(doc *goquery.Document) Fields {
	fields := Fields{
		Rank:        textField(doc, rankSelector, SentinelRank),
		Rating:      textField(doc, ratingSelector, SentinelRating),
		MinPlayers:  intAttrField(doc, playersSelector, minPlayersAttr),
		MaxPlayers:  intAttrField(doc, playersSelector, maxPlayersAttr),
		BestPlayers: textField(doc, bestPlayersSelector, SentinelBestPlayers),
		PlayingTime: textField(doc, playingTimeSelector, SentinelPlayingTime),
		Weight:      textField(doc, weightSelector, SentinelWeight),
	}

	log.Debug().
		Str("rank", fields.Rank).
		Str("rating", fields.Rating).
		Int("min_players", fields.MinPlayers).
		Int("max_players", fields.MaxPlayers).
		Str("playing_time", fields.PlayingTime).
		Str("weight", fields.Weight).
		Msg("Extracted detail page fields")

	return fields
}

// PriceSamples collects the raw marketplace listing price texts from the same
// snapshot. Tokens are returned untouched; cleaning and parsing belong to the
// price deriver.
func PriceSamples(doc *goquery.Document) []string {
	var samples []string
	doc.Find(priceSampleSelector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			samples = append(samples, text)
		}
	})
	log.Debug().Int("samples", len(samples)).Msg("Collected price samples")
	return samples
}

// textField returns the trimmed text of the first element matching selector,
// or sentinel when the element is absent or empty.
func textField(doc *goquery.Document, selector, sentinel string) string {
	node := doc.Find(selector).First()
	if node.Length() == 0 {
		log.Debug().Str("selector", selector).Msg("Field element not found")
		return sentinel
	}
	text := strings.TrimSpace(node.Text())
	if text == "" {
		return sentinel
	}
	return text
}

// intAttrField reads a numeric attribute off the first element matching
// selector. Absent element, absent attribute, or a non-numeric value all
// resolve to 0.
func intAttrField(doc *goquery.Document, selector, attr string) int {
	node := doc.Find(selector).First()
	if node.Length() == 0 {
		return 0
	}
	raw, ok := node.Attr(attr)
	if !ok {
		return 0
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Debug().Str("selector", selector).Str("attr", attr).Str("value", raw).Msg("Non-numeric attribute")
		return 0
	}
	return value
}
