package settle

// Aggregate folds a list of expenses into one signed net balance per
// participant. Positive means the participant is owed money, negative means
// they owe money.
//
// Every roster member starts at zero; any payer or participant the roster
// does not mention is added with a zero starting balance the first time an
// expense touches them. Aggregate is total: negative amounts, empty rosters
// and unknown ids all pass through arithmetically rather than failing.
//
// Division is exact floating point here. Rounding happens once, when
// Minimize classifies the balances.
func Aggregate(expenses []Expense, roster []ParticipantID) map[ParticipantID]float64 {
	balances := make(map[ParticipantID]float64, len(roster))
	for _, id := range roster {
		balances[id] = 0
	}

	for _, exp := range expenses {
		if _, ok := balances[exp.Payer]; !ok {
			balances[exp.Payer] = 0
		}

		// The payer's balance rises by the full amount; their own share
		// comes back out below as part of the divisor set.
		balances[exp.Payer] += exp.Amount

		if len(exp.Splits) > 0 {
			for id, share := range exp.Splits {
				if _, ok := balances[id]; !ok {
					balances[id] = 0
				}
				balances[id] -= share
			}
			continue
		}

		divisors := exp.Participants
		if len(divisors) == 0 {
			divisors = roster
		}
		if len(divisors) == 0 {
			// Nobody to share with: the payer absorbs their own expense.
			divisors = []ParticipantID{exp.Payer}
		}

		share := exp.Amount / float64(len(divisors))
		for _, id := range divisors {
			if _, ok := balances[id]; !ok {
				balances[id] = 0
			}
			balances[id] -= share
		}
	}

	return balances
}
