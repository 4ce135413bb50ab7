package split

import "math"

// PercentageStrategy divides the expense by per-participant percentages
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() SplitType {
	return SplitTypePercentage
}

// Validate checks if the inputs are valid for a percentage split
func (s *PercentageStrategy) Validate(totalAmount float64, participants []SplitInput) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount < 0 {
		return ErrNegativeAmount
	}

	var totalPercentage float64
	for _, p := range participants {
		if p.Percentage == nil {
			return ErrMissingPercentage
		}
		if *p.Percentage < 0 || *p.Percentage > 100 {
			return ErrPercentageOutOfRange
		}
		totalPercentage += *p.Percentage
	}

	// Allow for small floating point errors (99.99 to 100.01)
	if math.Abs(totalPercentage-100) > 0.01 {
		return ErrInvalidPercentages
	}

	return nil
}

// Calculate divides the total amount based on each participant's percentage.
// The payer's percentage is their own contribution; only the rest owe money.
func (s *PercentageStrategy) Calculate(totalAmount float64, payerID string, participants []SplitInput) ([]SplitOutput, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	debtors := filterPayer(payerID, participants)

	if len(debtors) == 0 {
		return []SplitOutput{}, nil
	}

	outputs := make([]SplitOutput, len(debtors))
	var totalCalculated float64

	for i, debtor := range debtors {
		amount := roundToTwoDecimals((totalAmount * (*debtor.Percentage)) / 100)
		totalCalculated += amount
		outputs[i] = SplitOutput{
			TravelerID: debtor.TravelerID,
			AmountOwed: amount,
		}
	}

	// Adjust the last debtor so the shares sum to what the debtors owe
	// (total minus the payer's own percentage).
	payerPercentage := 0.0
	for _, p := range participants {
		if p.TravelerID == payerID && p.Percentage != nil {
			payerPercentage = *p.Percentage
			break
		}
	}
	expectedFromDebtors := roundToTwoDecimals((totalAmount * (100 - payerPercentage)) / 100)
	difference := roundToTwoDecimals(expectedFromDebtors - totalCalculated)

	if len(outputs) > 0 && difference != 0 {
		outputs[len(outputs)-1].AmountOwed = roundToTwoDecimals(
			outputs[len(outputs)-1].AmountOwed + difference,
		)
	}

	return outputs, nil
}
