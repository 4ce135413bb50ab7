package split

import "math"

// ExactStrategy gives each participant a specific amount (must sum to total)
type ExactStrategy struct{}

// Type returns the split type identifier
func (s *ExactStrategy) Type() SplitType {
	return SplitTypeExact
}

// Validate checks if the inputs are valid for an exact split
func (s *ExactStrategy) Validate(totalAmount float64, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}

	var totalExact float64
	for _, p := range participants {
		if p.Amount == nil {
			return ErrMissingExactAmount
		}
		if *p.Amount < 0 {
			return ErrNegativeAmount
		}
		totalExact += *p.Amount
	}

	// Allow for small floating point errors
	if math.Abs(totalExact-totalAmount) > 0.01 {
		return ErrInvalidExactAmounts
	}

	return nil
}

// Calculate returns the exact amounts specified for each participant.
// The payer's amount represents their own share and is never billed.
func (s *ExactStrategy) Calculate(totalAmount float64, payerID string, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	debtors := filterPayer(payerID, participants)

	if len(debtors) == 0 {
		return []SplitOutput{}, nil
	}

	outputs := make([]SplitOutput, len(debtors))
	for i, debtor := range debtors {
		outputs[i] = SplitOutput{
			TravelerID: debtor.TravelerID,
			AmountOwed: roundToTwoDecimals(*debtor.Amount),
		}
	}

	return outputs, nil
}
