package settle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderfolk/tripledger/internal/settle"
)

func TestAggregate_EqualSplit(t *testing.T) {
	expenses := []settle.Expense{
		{
			ID:           "e1",
			Amount:       300,
			Payer:        "A",
			Participants: []settle.ParticipantID{"A", "B", "C"},
		},
	}
	roster := []settle.ParticipantID{"A", "B", "C"}

	balances := settle.Aggregate(expenses, roster)

	require.Len(t, balances, 3)
	assert.InDelta(t, 200, balances["A"], 0.001)
	assert.InDelta(t, -100, balances["B"], 0.001)
	assert.InDelta(t, -100, balances["C"], 0.001)
}

func TestAggregate_ExplicitSplits(t *testing.T) {
	expenses := []settle.Expense{
		{
			ID:     "e1",
			Amount: 100,
			Payer:  "A",
			Splits: map[settle.ParticipantID]float64{"A": 20, "B": 80},
		},
	}
	roster := []settle.ParticipantID{"A", "B"}

	balances := settle.Aggregate(expenses, roster)

	assert.InDelta(t, 80, balances["A"], 0.001)
	assert.InDelta(t, -80, balances["B"], 0.001)
}

func TestAggregate_SplitsTakePrecedenceOverParticipants(t *testing.T) {
	expenses := []settle.Expense{
		{
			ID:           "e1",
			Amount:       90,
			Payer:        "A",
			Participants: []settle.ParticipantID{"A", "B", "C"},
			Splits:       map[settle.ParticipantID]float64{"B": 90},
		},
	}
	roster := []settle.ParticipantID{"A", "B", "C"}

	balances := settle.Aggregate(expenses, roster)

	assert.InDelta(t, 90, balances["A"], 0.001)
	assert.InDelta(t, -90, balances["B"], 0.001)
	assert.InDelta(t, 0, balances["C"], 0.001)
}

func TestAggregate_FallsBackToRoster(t *testing.T) {
	// No participants and no splits: the whole roster shares the cost.
	expenses := []settle.Expense{
		{ID: "e1", Amount: 120, Payer: "A"},
	}
	roster := []settle.ParticipantID{"A", "B", "C", "D"}

	balances := settle.Aggregate(expenses, roster)

	assert.InDelta(t, 90, balances["A"], 0.001)
	assert.InDelta(t, -30, balances["B"], 0.001)
	assert.InDelta(t, -30, balances["C"], 0.001)
	assert.InDelta(t, -30, balances["D"], 0.001)
}

func TestAggregate_EmptyRosterFallsBackToPayer(t *testing.T) {
	expenses := []settle.Expense{
		{ID: "e1", Amount: 75, Payer: "A"},
	}

	balances := settle.Aggregate(expenses, nil)

	// The payer absorbs their own cost: credited 75, debited 75.
	require.Len(t, balances, 1)
	assert.InDelta(t, 0, balances["A"], 0.001)
}

func TestAggregate_UnknownParticipantsAreAdded(t *testing.T) {
	// Payer and one participant are missing from the roster.
	expenses := []settle.Expense{
		{
			ID:           "e1",
			Amount:       60,
			Payer:        "X",
			Participants: []settle.ParticipantID{"A", "Y"},
		},
	}
	roster := []settle.ParticipantID{"A"}

	balances := settle.Aggregate(expenses, roster)

	require.Len(t, balances, 3)
	assert.InDelta(t, 60, balances["X"], 0.001)
	assert.InDelta(t, -30, balances["A"], 0.001)
	assert.InDelta(t, -30, balances["Y"], 0.001)
}

func TestAggregate_Conservation(t *testing.T) {
	type testCase struct {
		name     string
		expenses []settle.Expense
		roster   []settle.ParticipantID
	}

	tests := []testCase{
		{
			name: "EqualSplits",
			expenses: []settle.Expense{
				{ID: "e1", Amount: 100, Payer: "A", Participants: []settle.ParticipantID{"A", "B", "C"}},
				{ID: "e2", Amount: 47.31, Payer: "B", Participants: []settle.ParticipantID{"B", "C"}},
				{ID: "e3", Amount: 0.01, Payer: "C", Participants: []settle.ParticipantID{"A", "B", "C", "D"}},
			},
			roster: []settle.ParticipantID{"A", "B", "C", "D"},
		},
		{
			name: "ExplicitSplits",
			expenses: []settle.Expense{
				{ID: "e1", Amount: 99.99, Payer: "A", Splits: map[settle.ParticipantID]float64{"A": 33.33, "B": 33.33, "C": 33.33}},
			},
			roster: []settle.ParticipantID{"A", "B", "C"},
		},
		{
			name: "RosterFallbackWithRepeatedDivision",
			expenses: []settle.Expense{
				{ID: "e1", Amount: 10, Payer: "A"},
				{ID: "e2", Amount: 10, Payer: "B"},
				{ID: "e3", Amount: 10, Payer: "C"},
				{ID: "e4", Amount: 1, Payer: "A"},
			},
			roster: []settle.ParticipantID{"A", "B", "C"},
		},
		{
			name: "NegativeAmountPassesThrough",
			expenses: []settle.Expense{
				{ID: "e1", Amount: -50, Payer: "A", Participants: []settle.ParticipantID{"A", "B"}},
			},
			roster: []settle.ParticipantID{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := settle.Aggregate(tt.expenses, tt.roster)

			var total float64
			for _, balance := range balances {
				total += balance
			}
			assert.InDelta(t, 0, total, 1e-9, "balances must conserve money")
		})
	}
}

func TestAggregate_NoExpenses(t *testing.T) {
	roster := []settle.ParticipantID{"A", "B"}

	balances := settle.Aggregate(nil, roster)

	require.Len(t, balances, 2)
	assert.Zero(t, balances["A"])
	assert.Zero(t, balances["B"])
}
