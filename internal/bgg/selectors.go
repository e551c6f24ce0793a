package bgg

// Documented selectors for the search flow and the detail-page fields.
// Layout resilience beyond these selectors is out of scope; when the site
// markup moves, this file is the single place to follow it.
const (
	// Search flow
	SearchInput      = `input[name="searchTerm"]`
	SearchResultLink = `#results_objectname1 a`
	DetailHeader     = `.game-header-title-info h1 a`

	// Detail-page fields
	rankSelector        = `.game-header-ranks .rank-value a`
	ratingSelector      = `.rating-overall .rating-overall-value`
	playersSelector     = `.gameplay-players-range span`
	bestPlayersSelector = `.gameplay-players-community .gameplay-players-value`
	playingTimeSelector = `.gameplay-time .gameplay-time-value`
	weightSelector      = `.gameplay-weight .gameplay-weight-value`

	// Marketplace listings used for price derivation
	priceSampleSelector = `.marketplace-listings .listing-price`

	// Numeric attributes on the players range element
	minPlayersAttr = "min"
	maxPlayersAttr = "max"
)
