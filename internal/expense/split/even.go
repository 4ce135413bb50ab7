package split

// EvenStrategy divides the expense equally among all participants
type EvenStrategy struct{}

// Type returns the split type identifier
func (s *EvenStrategy) Type() SplitType {
	return SplitTypeEven
}

// Validate checks if the inputs are valid for an even split
func (s *EvenStrategy) Validate(totalAmount float64, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// Calculate divides the total amount evenly among all participants.
// The payer is excluded from owing money (they already paid).
func (s *EvenStrategy) Calculate(totalAmount float64, payerID string, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	debtors := filterPayer(payerID, participants)

	if len(debtors) == 0 {
		// Payer is the only participant, nothing to split
		return []SplitOutput{}, nil
	}

	// Each person's share counts the payer too; the payer's own share is
	// simply never billed.
	sharePerPerson := roundToTwoDecimals(totalAmount / float64(len(participants)))

	// Distribute any rounding remainder to the first debtor so the shares
	// still sum to what the debtors collectively owe.
	totalDistributed := sharePerPerson * float64(len(debtors))
	expectedFromDebtors := totalAmount - sharePerPerson
	roundingDifference := roundToTwoDecimals(expectedFromDebtors - totalDistributed)

	outputs := make([]SplitOutput, len(debtors))
	for i, debtor := range debtors {
		amount := sharePerPerson
		if i == 0 && roundingDifference != 0 {
			amount = roundToTwoDecimals(amount + roundingDifference)
		}
		outputs[i] = SplitOutput{
			TravelerID: debtor.TravelerID,
			AmountOwed: amount,
		}
	}

	return outputs, nil
}
