// Package domain defines core data structures used throughout the simulator.
package domain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Pair cryptocurrency trading pair.
type Pair struct {
	// From base currency symbol.
	From string
	// To quote currency symbol.
	To string
}

// String returns the string representation.
func (p Pair) String() string {
	return fmt.Sprintf("%s_%s", p.From, p.To)
}

// Symbol returns the concatenated symbol representation.
func (p Pair) Symbol() string {
	return fmt.Sprintf("%s%s", p.From, p.To)
}

// PairFromString parses a pair in BASE_QUOTE form, e.g. "BTC_USDT".
// Input is case-normalized to upper case.
func PairFromString(s string) (Pair, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, errors.Wrapf(ErrUnknownSymbol, "pair must be in BASE_QUOTE form, got %q", s)
	}
	return Pair{From: parts[0], To: parts[1]}, nil
}
