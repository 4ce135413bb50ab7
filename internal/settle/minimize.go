package settle

import (
	"math"
	"sort"
)

// party is a classified participant inside the minimizer.
type party struct {
	id      ParticipantID
	balance float64
}

// Minimize turns a net-balance map into settlement transfers using
// RoundCents output rounding. See MinimizeRounded.
func Minimize(balances map[ParticipantID]float64) []Transfer {
	return MinimizeRounded(balances, RoundCents)
}

// MinimizeRounded computes a small set of pairwise transfers that settles
// every balance, using a greedy largest-debtor/largest-creditor matching.
// This is the standard debt-simplification heuristic, not the NP-hard
// minimum-transaction solution.
//
// Balances are rounded to 2 decimals before classification; anything within
// a cent of zero is already settled and excluded. The result is
// deterministic for a given balance map regardless of map iteration order:
// ties on balance break on ascending participant id.
//
// MinimizeRounded never fails; an all-settled input yields no transfers.
func MinimizeRounded(balances map[ParticipantID]float64, rounding Rounding) []Transfer {
	var debtors, creditors []party
	for id, balance := range balances {
		balance = roundToTwoDecimals(balance)
		switch {
		case balance < -epsilon:
			debtors = append(debtors, party{id: id, balance: balance})
		case balance > epsilon:
			creditors = append(creditors, party{id: id, balance: balance})
		}
	}

	// Most negative debtor first, most positive creditor first.
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].balance != debtors[j].balance {
			return debtors[i].balance < debtors[j].balance
		}
		return debtors[i].id < debtors[j].id
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].balance != creditors[j].balance {
			return creditors[i].balance > creditors[j].balance
		}
		return creditors[i].id < creditors[j].id
	})

	var transfers []Transfer
	d, c := 0, 0
	for d < len(debtors) && c < len(creditors) {
		amount := math.Min(-debtors[d].balance, creditors[c].balance)
		if amount > 0 {
			transfers = append(transfers, Transfer{
				From:   debtors[d].id,
				To:     creditors[c].id,
				Amount: rounding.apply(amount),
			})
		}

		// Move the amount toward zero on both sides.
		debtors[d].balance += amount
		creditors[c].balance -= amount

		if -debtors[d].balance < epsilon {
			d++
		}
		if c < len(creditors) && creditors[c].balance < epsilon {
			c++
		}
	}

	return transfers
}
