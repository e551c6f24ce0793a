package bgg

// Sentinel values substituted when a detail-page field cannot be located.
// They are written to the sheet as-is so a missing field is visible in place.
const (
	SentinelRank        = "Rank not found"
	SentinelRating      = "Rating not found"
	SentinelPlayers     = "Players not found"
	SentinelBestPlayers = "Best players not found"
	SentinelPlayingTime = "Playing time not found"
	SentinelWeight      = "Weight not found"
)

// GameRecord is the fully populated result of one title lookup. Every field
// always holds either an extracted value or its sentinel; a record is never
// partial. It is built once per lookup and not mutated afterwards.
type GameRecord struct {
	Rank            string
	Rating          string
	Players         string
	BestPlayers     string
	PlayingTime     string
	Weight          string
	SuggestedRetail float64
	UsedBuyPrice    string
	UsedSellPrice   string
}

// Fields holds the raw per-field extraction results before derivation.
// MinPlayers/MaxPlayers are 0 when the page does not carry them.
type Fields struct {
	Rank        string
	Rating      string
	MinPlayers  int
	MaxPlayers  int
	BestPlayers string
	PlayingTime string
	Weight      string
}
