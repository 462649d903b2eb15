// Package booking fabricates booking confirmations. Booking is deliberately
// mocked in this workshop: no real inventory is held anywhere, success is
// pseudo-random and confirmation codes are generated locally. Price stays
// zero in the confirmation itself; formatters may render illustrative prices.
package booking

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Confirmation is the ephemeral result of a mocked booking. Never persisted.
type Confirmation struct {
	ConfirmationCode string    `json:"confirmationCode"`
	Status           string    `json:"status"`
	Item             string    `json:"item"`
	Name             string    `json:"name"`
	BookedAt         time.Time `json:"bookedAt"`
	Price            float64   `json:"price"`
}

// successRate mirrors the original workshop's random booking outcome.
const successRate = 0.9

// randFloat is stubbed in tests to force deterministic outcomes.
var randFloat = rand.Float64

// Confirm attempts a mocked booking of item for name. Roughly one in ten
// attempts fails to simulate provider-side rejection.
func Confirm(codePrefix, item, name string) (Confirmation, error) {
	if randFloat() >= successRate {
		return Confirmation{}, fmt.Errorf("booking for %s was rejected, please retry", item)
	}
	return Confirmation{
		ConfirmationCode: NewCode(codePrefix),
		Status:           "confirmed",
		Item:             item,
		Name:             name,
		BookedAt:         time.Now().UTC(),
	}, nil
}

// NewCode generates a confirmation code like "FL-9A4C21E0".
func NewCode(prefix string) string {
	frag := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return prefix + "-" + frag
}
