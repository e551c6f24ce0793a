package bgg

import (
	"strconv"
	"strings"
)

// maxPlayerSpan caps the enumerated range. Detail pages occasionally carry
// garbage bounds (e.g. max=999); anything wider than this is treated the same
// as a missing player count.
const maxPlayerSpan = 100

// FormatPlayerRange expands a min/max player count into the display string
// written to the sheet: every integer in [min, max] ascending, comma and
// space separated ("2, 3, 4"). Non-positive bounds or an inverted/oversized
// range yield the players sentinel.
func FormatPlayerRange(minPlayers, maxPlayers int) string {
	if minPlayers <= 0 || maxPlayers <= 0 {
		return SentinelPlayers
	}
	if maxPlayers < minPlayers || maxPlayers-minPlayers > maxPlayerSpan {
		return SentinelPlayers
	}

	var b strings.Builder
	for n := minPlayers; n <= maxPlayers; n++ {
		if n > minPlayers {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
