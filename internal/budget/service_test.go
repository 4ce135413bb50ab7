package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEnvelopesFromInputs(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []EnvelopeInput
		wantErr error
	}{
		{
			name: "valid allocations",
			inputs: []EnvelopeInput{
				{Category: "food", Percentage: 0.5},
				{Category: "transport", Percentage: 0.3},
				{Category: "lodging", Percentage: 0.2},
			},
		},
		{
			name: "remainder left unallocated",
			inputs: []EnvelopeInput{
				{Category: "food", Percentage: 0.4},
			},
		},
		{
			name:   "no envelopes at all",
			inputs: nil,
		},
		{
			name: "sum over one",
			inputs: []EnvelopeInput{
				{Category: "food", Percentage: 0.7},
				{Category: "transport", Percentage: 0.4},
			},
			wantErr: ErrInvalidAllocation,
		},
		{
			name: "zero percentage",
			inputs: []EnvelopeInput{
				{Category: "food", Percentage: 0},
			},
			wantErr: ErrInvalidAllocation,
		},
		{
			name: "negative percentage",
			inputs: []EnvelopeInput{
				{Category: "food", Percentage: -0.1},
			},
			wantErr: ErrInvalidAllocation,
		},
		{
			name: "duplicate category",
			inputs: []EnvelopeInput{
				{Category: "food", Percentage: 0.2},
				{Category: "food", Percentage: 0.3},
			},
			wantErr: ErrDuplicateCategory,
		},
		{
			name: "empty category",
			inputs: []EnvelopeInput{
				{Category: "", Percentage: 0.2},
			},
			wantErr: ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelopes, err := envelopesFromInputs(tt.inputs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, envelopes, len(tt.inputs))
		})
	}

	t.Run("exactly one is allowed", func(t *testing.T) {
		// 0.1 ten times would overflow with float accumulation
		var inputs []EnvelopeInput
		categories := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
		for _, c := range categories {
			inputs = append(inputs, EnvelopeInput{Category: c, Percentage: 0.1})
		}

		_, err := envelopesFromInputs(inputs)
		assert.NoError(t, err)
	})
}

func TestBuildReport(t *testing.T) {
	budget := &Budget{
		ID:           "bud-1",
		TripID:       "trip-1",
		TotalAmount:  dec("1000"),
		CurrencyCode: "EUR",
	}
	envelopes := []*Envelope{
		{Category: "food", Percentage: dec("0.5")},
		{Category: "transport", Percentage: dec("0.3")},
	}

	t.Run("allocations versus spend", func(t *testing.T) {
		spend := map[string]decimal.Decimal{
			"food":      dec("320.50"),
			"transport": dec("410"),
			"museum":    dec("45.75"),
		}

		report := buildReport(budget, envelopes, spend)

		assert.Equal(t, "trip-1", report.TripID)
		assert.Equal(t, "EUR", report.CurrencyCode)

		require.Len(t, report.Envelopes, 2)

		food := report.Envelopes[0]
		assert.Equal(t, "food", food.Category)
		assert.True(t, food.Allocated.Equal(dec("500")), "allocated %s", food.Allocated)
		assert.True(t, food.Spent.Equal(dec("320.50")))
		assert.True(t, food.Remaining.Equal(dec("179.50")))
		assert.False(t, food.Overspent)

		transport := report.Envelopes[1]
		assert.True(t, transport.Allocated.Equal(dec("300")))
		assert.True(t, transport.Remaining.Equal(dec("-110")))
		assert.True(t, transport.Overspent)

		// Museum spend has no envelope
		assert.True(t, report.Unbudgeted.Equal(dec("45.75")))
		assert.True(t, report.TotalSpent.Equal(dec("776.25")))
		assert.True(t, report.TotalRemaining.Equal(dec("223.75")))
	})

	t.Run("no spend yet", func(t *testing.T) {
		report := buildReport(budget, envelopes, map[string]decimal.Decimal{})

		assert.True(t, report.TotalSpent.IsZero())
		assert.True(t, report.TotalRemaining.Equal(dec("1000")))
		for _, env := range report.Envelopes {
			assert.True(t, env.Spent.IsZero())
			assert.False(t, env.Overspent)
		}
	})

	t.Run("fractional allocation rounds to cents", func(t *testing.T) {
		odd := &Budget{TripID: "trip-1", TotalAmount: dec("99.99"), CurrencyCode: "EUR"}
		thirds := []*Envelope{{Category: "food", Percentage: dec("0.333")}}

		report := buildReport(odd, thirds, nil)

		// 99.99 * 0.333 = 33.29667 -> 33.30
		assert.True(t, report.Envelopes[0].Allocated.Equal(dec("33.30")),
			"allocated %s", report.Envelopes[0].Allocated)
	})
}
