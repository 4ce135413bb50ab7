package split_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderfolk/tripledger/internal/expense/split"
)

func floatPtr(f float64) *float64 { return &f }

func TestFactory_Create(t *testing.T) {
	factory := split.NewSplitStrategyFactory()

	for _, st := range []split.SplitType{split.SplitTypeEven, split.SplitTypePercentage, split.SplitTypeExact} {
		strategy, err := factory.Create(st)
		require.NoError(t, err)
		assert.Equal(t, st, strategy.Type())
	}

	_, err := factory.CreateFromString("HALVSIES")
	assert.Error(t, err)
}

func TestEvenStrategy_Calculate(t *testing.T) {
	strategy := &split.EvenStrategy{}

	outputs, err := strategy.Calculate(300, "a", []split.SplitInput{
		{TravelerID: "a"}, {TravelerID: "b"}, {TravelerID: "c"},
	})

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, split.SplitOutput{TravelerID: "b", AmountOwed: 100}, outputs[0])
	assert.Equal(t, split.SplitOutput{TravelerID: "c", AmountOwed: 100}, outputs[1])
}

func TestEvenStrategy_RoundingRemainderGoesToFirstDebtor(t *testing.T) {
	strategy := &split.EvenStrategy{}

	outputs, err := strategy.Calculate(100, "a", []split.SplitInput{
		{TravelerID: "a"}, {TravelerID: "b"}, {TravelerID: "c"},
	})

	require.NoError(t, err)
	require.Len(t, outputs, 2)

	var total float64
	for _, o := range outputs {
		total += o.AmountOwed
	}
	// Debtors collectively owe the total minus the payer's share.
	assert.InDelta(t, 100-33.33, total, 0.001)
}

func TestEvenStrategy_PayerOnly(t *testing.T) {
	strategy := &split.EvenStrategy{}

	outputs, err := strategy.Calculate(50, "a", []split.SplitInput{{TravelerID: "a"}})

	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestEvenStrategy_Validate(t *testing.T) {
	strategy := &split.EvenStrategy{}

	assert.ErrorIs(t, strategy.Validate(10, nil), split.ErrNoParticipants)
	assert.ErrorIs(t, strategy.Validate(-10, []split.SplitInput{{TravelerID: "a"}}), split.ErrNegativeAmount)
}

func TestExactStrategy_Calculate(t *testing.T) {
	strategy := &split.ExactStrategy{}

	outputs, err := strategy.Calculate(100, "a", []split.SplitInput{
		{TravelerID: "a", Amount: floatPtr(20)},
		{TravelerID: "b", Amount: floatPtr(80)},
	})

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, split.SplitOutput{TravelerID: "b", AmountOwed: 80}, outputs[0])
}

func TestExactStrategy_Validate(t *testing.T) {
	strategy := &split.ExactStrategy{}

	type testCase struct {
		name         string
		total        float64
		participants []split.SplitInput
		wantErr      error
	}

	tests := []testCase{
		{
			name:    "NoParticipants",
			total:   100,
			wantErr: split.ErrNoParticipants,
		},
		{
			name:  "MissingAmount",
			total: 100,
			participants: []split.SplitInput{
				{TravelerID: "a", Amount: floatPtr(100)},
				{TravelerID: "b"},
			},
			wantErr: split.ErrMissingExactAmount,
		},
		{
			name:  "AmountsDoNotSum",
			total: 100,
			participants: []split.SplitInput{
				{TravelerID: "a", Amount: floatPtr(30)},
				{TravelerID: "b", Amount: floatPtr(30)},
			},
			wantErr: split.ErrInvalidExactAmounts,
		},
		{
			name:  "NegativeShare",
			total: 100,
			participants: []split.SplitInput{
				{TravelerID: "a", Amount: floatPtr(110)},
				{TravelerID: "b", Amount: floatPtr(-10)},
			},
			wantErr: split.ErrNegativeAmount,
		},
		{
			name:  "WithinEpsilon",
			total: 100,
			participants: []split.SplitInput{
				{TravelerID: "a", Amount: floatPtr(33.33)},
				{TravelerID: "b", Amount: floatPtr(33.33)},
				{TravelerID: "c", Amount: floatPtr(33.34)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := strategy.Validate(tt.total, tt.participants)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPercentageStrategy_Calculate(t *testing.T) {
	strategy := &split.PercentageStrategy{}

	outputs, err := strategy.Calculate(200, "a", []split.SplitInput{
		{TravelerID: "a", Percentage: floatPtr(50)},
		{TravelerID: "b", Percentage: floatPtr(30)},
		{TravelerID: "c", Percentage: floatPtr(20)},
	})

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, split.SplitOutput{TravelerID: "b", AmountOwed: 60}, outputs[0])
	assert.Equal(t, split.SplitOutput{TravelerID: "c", AmountOwed: 40}, outputs[1])
}

func TestPercentageStrategy_RoundingAdjustsLastDebtor(t *testing.T) {
	strategy := &split.PercentageStrategy{}

	outputs, err := strategy.Calculate(100, "a", []split.SplitInput{
		{TravelerID: "a", Percentage: floatPtr(33.34)},
		{TravelerID: "b", Percentage: floatPtr(33.33)},
		{TravelerID: "c", Percentage: floatPtr(33.33)},
	})

	require.NoError(t, err)
	require.Len(t, outputs, 2)

	var total float64
	for _, o := range outputs {
		total += o.AmountOwed
	}
	assert.InDelta(t, 66.66, total, 0.001)
}

func TestPercentageStrategy_Validate(t *testing.T) {
	strategy := &split.PercentageStrategy{}

	assert.ErrorIs(t, strategy.Validate(100, []split.SplitInput{
		{TravelerID: "a", Percentage: floatPtr(60)},
		{TravelerID: "b", Percentage: floatPtr(60)},
	}), split.ErrInvalidPercentages)

	assert.ErrorIs(t, strategy.Validate(100, []split.SplitInput{
		{TravelerID: "a", Percentage: floatPtr(150)},
		{TravelerID: "b", Percentage: floatPtr(-50)},
	}), split.ErrPercentageOutOfRange)

	assert.ErrorIs(t, strategy.Validate(100, []split.SplitInput{
		{TravelerID: "a", Percentage: floatPtr(100)},
		{TravelerID: "b"},
	}), split.ErrMissingPercentage)
}
