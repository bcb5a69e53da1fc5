package booking

import (
	"math"
	"strings"
	"time"
)

// PricingStrategy defines the interface for pricing a stay.
type PricingStrategy interface {
	// PriceFor returns the nightly rate for a room category.
	PriceFor(category string) int64
	// RateCard returns the known categories with their nightly rates.
	RateCard() map[string]int64
}

// standardRates is keyed by normalized category.
var standardRates = map[string]int64{
	"стандарт":    3000,
	"улучшенный":  4500,
	"люкс":        7000,
	"апартаменты": 10000,
}

// StandardRateCard implements the fixed per-night rate card of the hotel.
type StandardRateCard struct{}

// NewStandardRateCard creates a new StandardRateCard.
func NewStandardRateCard() *StandardRateCard {
	return &StandardRateCard{}
}

// PriceFor returns the nightly rate for category. Unknown categories cost 0.
func (s *StandardRateCard) PriceFor(category string) int64 {
	return standardRates[NormalizeCategory(category)]
}

// RateCard returns a copy of the rate table.
func (s *StandardRateCard) RateCard() map[string]int64 {
	out := make(map[string]int64, len(standardRates))
	for k, v := range standardRates {
		out[k] = v
	}
	return out
}

// NormalizeCategory lowercases and trims a category for rate lookup.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

// NightsBetween returns the number of nights between two instants,
// rounding any partial day up.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Quote prices a stay in a room of the given category.
func Quote(strategy PricingStrategy, category string, checkIn, checkOut time.Time) int64 {
	return strategy.PriceFor(category) * int64(NightsBetween(checkIn, checkOut))
}
