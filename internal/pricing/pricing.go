// Package pricing turns raw marketplace price tokens into the canonical
// retail price and the derived used-market buy/sell prices.
package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// Strategy reduces the surviving parsed prices to the canonical retail value.
// It is only called with a non-empty slice.
type Strategy func(values []float64) float64

// Lowest picks the minimum listed price: the cheapest listing approximates
// the item's baseline retail value among resale listings.
func Lowest(values []float64) float64 {
	lowest := values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

// Derived carries one record's three price fields. The used prices are
// formatted to exactly two decimal places ("0.00" when no price survived).
type Derived struct {
	SuggestedRetail float64
	UsedBuyPrice    string
	UsedSellPrice   string
}

// Derive cleans and parses the raw price tokens with the default Lowest
// strategy. Tokens that are non-numeric after cleaning are discarded
// silently; an empty or fully malformed sample set derives zeros.
func Derive(samples []string) Derived {
	return DeriveWith(samples, Lowest)
}

// DeriveWith is Derive with an explicit retail strategy.
func DeriveWith(samples []string, strategy Strategy) Derived {
	var values []float64
	for _, sample := range samples {
		cleaned := cleanToken(sample)
		if cleaned == "" {
			continue
		}
		value, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		values = append(values, value)
	}

	retail := 0.0
	if len(values) > 0 {
		retail = strategy(values)
	}

	return Derived{
		SuggestedRetail: retail,
		UsedBuyPrice:    fmt.Sprintf("%.2f", retail/4),
		UsedSellPrice:   fmt.Sprintf("%.2f", retail/2),
	}
}

// cleanToken strips every character that is not a digit or decimal point,
// so a token like "$19.99" survives as a parseable number.
func cleanToken(token string) string {
	var b strings.Builder
	for _, r := range token {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
