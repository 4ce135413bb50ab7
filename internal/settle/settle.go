// Package settle computes how a group of trip members squares up after
// sharing expenses. It is a pure library: no storage, no I/O, no currency
// conversion. Callers hand it a snapshot of expenses in the trip's base
// currency plus the member roster, and get back the minimal-looking set of
// pairwise transfers that zeroes everyone's net balance.
package settle

import "math"

// ParticipantID is an opaque identifier for a trip member. The engine never
// interprets it; equality and ordering are all that matter.
type ParticipantID string

// Expense is an immutable snapshot of a single shared cost, already
// converted to the trip's base currency upstream.
type Expense struct {
	ID     string
	Amount float64

	// Payer fronted the full amount on behalf of the group.
	Payer ParticipantID

	// Participants share the cost. When empty the expense is shared by
	// the whole roster.
	Participants []ParticipantID

	// Splits, when non-empty, gives each participant's exact share and
	// takes precedence over Participants. The engine does not check that
	// the shares sum to Amount; that is upstream validation's job.
	Splits map[ParticipantID]float64
}

// Transfer is a single settlement instruction: From pays To.
type Transfer struct {
	From   ParticipantID `json:"from"`
	To     ParticipantID `json:"to"`
	Amount float64       `json:"amount"`
}

// Rounding selects how transfer amounts are rounded for output.
type Rounding int

const (
	// RoundCents rounds transfer amounts to 2 decimal places, for base
	// currencies with fractional units.
	RoundCents Rounding = iota

	// RoundWhole rounds transfer amounts to the nearest whole unit, for
	// currencies that are displayed without fractions.
	RoundWhole
)

// epsilon is the settled band: balances within a cent of zero are treated
// as already settled.
const epsilon = 0.01

// roundToTwoDecimals rounds a float to 2 decimal places.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func (r Rounding) apply(value float64) float64 {
	if r == RoundWhole {
		return math.Round(value)
	}
	return roundToTwoDecimals(value)
}
