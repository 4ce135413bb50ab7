package settlement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/wanderfolk/tripledger/internal/expense"
	"github.com/wanderfolk/tripledger/internal/trip"
)

const (
	testTripID = "trip-1"
	ana        = "traveler-ana"
	ben        = "traveler-ben"
	cam        = "traveler-cam"
)

func testTrip() *trip.Trip {
	return &trip.Trip{
		ID:           testTripID,
		Name:         "Lisbon Weekend",
		BaseCurrency: "EUR",
	}
}

func testMembers() []*trip.TripMember {
	return []*trip.TripMember{
		{TripID: testTripID, TravelerID: ana, DisplayName: "Ana"},
		{TripID: testTripID, TravelerID: ben, DisplayName: "Ben"},
		{TripID: testTripID, TravelerID: cam, DisplayName: "Cam"},
	}
}

// expenseWith builds an ExpenseWithSplits with pending, unlocked splits.
func expenseWith(id, payerID string, amount float64, owes map[string]float64) *expense.ExpenseWithSplits {
	item := &expense.ExpenseWithSplits{
		Expense: &expense.Expense{
			ID:      id,
			TripID:  testTripID,
			PayerID: payerID,
			Amount:  amount,
		},
	}
	for debtorID, owed := range owes {
		item.Splits = append(item.Splits, &expense.Split{
			ID:         id + "-split-" + debtorID,
			ExpenseID:  id,
			DebtorID:   debtorID,
			AmountOwed: owed,
			Status:     expense.SplitStatusPending,
		})
	}
	return item
}

func newTestService(t *testing.T) (*Service, *MockStore, *MockExpenseSource, *MockTripSource) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	expenses := NewMockExpenseSource(ctrl)
	trips := NewMockTripSource(ctrl)
	return NewService(store, expenses, trips), store, expenses, trips
}

func TestGetPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("suggests transfers that clear all balances", func(t *testing.T) {
		svc, _, expenses, trips := newTestService(t)

		// Ana fronted 300 for dinner, split evenly. Ben and Cam each owe 100.
		items := []*expense.ExpenseWithSplits{
			expenseWith("exp-1", ana, 300, map[string]float64{ben: 100, cam: 100}),
		}

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		trips.EXPECT().GetMembers(ctx, testTripID).Return(testMembers(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(items, nil)

		plan, err := svc.GetPlan(ctx, testTripID, ben)
		require.NoError(t, err)

		assert.Equal(t, testTripID, plan.TripID)
		assert.Equal(t, "EUR", plan.CurrencyCode)

		require.Len(t, plan.Balances, 3)
		assert.Equal(t, ana, plan.Balances[0].TravelerID)
		assert.InDelta(t, 200.0, plan.Balances[0].Amount, 0.001)
		assert.Equal(t, "Ana", plan.Balances[0].Label)
		assert.Equal(t, ben, plan.Balances[1].TravelerID)
		assert.InDelta(t, -100.0, plan.Balances[1].Amount, 0.001)
		assert.Equal(t, "you", plan.Balances[1].Label)
		assert.Equal(t, cam, plan.Balances[2].TravelerID)
		assert.InDelta(t, -100.0, plan.Balances[2].Amount, 0.001)

		require.Len(t, plan.Transfers, 2)
		assert.Equal(t, ben, plan.Transfers[0].From)
		assert.Equal(t, ana, plan.Transfers[0].To)
		assert.InDelta(t, 100.0, plan.Transfers[0].Amount, 0.001)
		assert.Equal(t, "you pay Ana 100.00 EUR", plan.Transfers[0].Message)
		assert.Equal(t, cam, plan.Transfers[1].From)
		assert.Equal(t, "Cam pays Ana 100.00 EUR", plan.Transfers[1].Message)
	})

	t.Run("addresses the viewer as receiver", func(t *testing.T) {
		svc, _, expenses, trips := newTestService(t)

		items := []*expense.ExpenseWithSplits{
			expenseWith("exp-1", ana, 60, map[string]float64{ben: 30}),
		}

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		trips.EXPECT().GetMembers(ctx, testTripID).Return(testMembers(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(items, nil)

		plan, err := svc.GetPlan(ctx, testTripID, ana)
		require.NoError(t, err)

		require.Len(t, plan.Transfers, 1)
		assert.Equal(t, "Ben pays you 30.00 EUR", plan.Transfers[0].Message)
		assert.Equal(t, "you", plan.Transfers[0].ToLabel)
	})

	t.Run("skips splits locked to an in-flight settlement", func(t *testing.T) {
		svc, _, expenses, trips := newTestService(t)

		settlementID := "stl-1"
		item := expenseWith("exp-1", ana, 300, map[string]float64{ben: 100, cam: 100})
		for _, sp := range item.Splits {
			if sp.DebtorID == ben {
				sp.SettlementID = &settlementID
			}
		}

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		trips.EXPECT().GetMembers(ctx, testTripID).Return(testMembers(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return([]*expense.ExpenseWithSplits{item}, nil)

		plan, err := svc.GetPlan(ctx, testTripID, ana)
		require.NoError(t, err)

		// Only Cam's 100 is still outstanding
		require.Len(t, plan.Transfers, 1)
		assert.Equal(t, cam, plan.Transfers[0].From)
		assert.InDelta(t, 100.0, plan.Transfers[0].Amount, 0.001)
	})

	t.Run("empty trip yields an empty plan", func(t *testing.T) {
		svc, _, expenses, trips := newTestService(t)

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		trips.EXPECT().GetMembers(ctx, testTripID).Return(testMembers(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(nil, nil)

		plan, err := svc.GetPlan(ctx, testTripID, ana)
		require.NoError(t, err)
		assert.Empty(t, plan.Transfers)
		// Every member shows up settled at zero
		require.Len(t, plan.Balances, 3)
		for _, b := range plan.Balances {
			assert.Zero(t, b.Amount)
		}
	})

	t.Run("trip not found", func(t *testing.T) {
		svc, _, _, trips := newTestService(t)

		trips.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := svc.GetPlan(ctx, "missing", ana)
		assert.ErrorIs(t, err, ErrTripNotFound)
	})
}

func TestCreateSettlement(t *testing.T) {
	ctx := context.Background()

	t.Run("initiator owes the other traveler", func(t *testing.T) {
		svc, store, expenses, trips := newTestService(t)

		items := []*expense.ExpenseWithSplits{
			expenseWith("exp-1", ana, 60, map[string]float64{ben: 30, cam: 10}),
		}
		created := &Settlement{ID: "stl-1", TripID: testTripID, PayerID: ben, ReceiverID: ana, Amount: 30, Status: SettlementStatusPending}

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(items, nil)
		store.EXPECT().Create(ctx, testTripID, ben, ana, 30.0, "EUR").Return(created, nil)
		expenses.EXPECT().LockSplitsToSettlement(ctx, []string{"exp-1-split-" + ben}, "stl-1").Return(nil)

		got, err := svc.CreateSettlement(ctx, ben, &CreateSettlementRequest{TripID: testTripID, OtherTravelerID: ana})
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("direction flips when the other traveler owes", func(t *testing.T) {
		svc, store, expenses, trips := newTestService(t)

		items := []*expense.ExpenseWithSplits{
			expenseWith("exp-1", ana, 60, map[string]float64{ben: 30}),
		}
		created := &Settlement{ID: "stl-2", PayerID: ben, ReceiverID: ana, Amount: 30}

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(items, nil)
		// Ana initiates, but Ben still pays
		store.EXPECT().Create(ctx, testTripID, ben, ana, 30.0, "EUR").Return(created, nil)
		expenses.EXPECT().LockSplitsToSettlement(ctx, gomock.Any(), "stl-2").Return(nil)

		got, err := svc.CreateSettlement(ctx, ana, &CreateSettlementRequest{TripID: testTripID, OtherTravelerID: ben})
		require.NoError(t, err)
		assert.Equal(t, ben, got.PayerID)
	})

	t.Run("mutual debts net to a single amount", func(t *testing.T) {
		svc, store, expenses, trips := newTestService(t)

		// Ben owes Ana 50, Ana owes Ben 20 -> Ben pays 30
		items := []*expense.ExpenseWithSplits{
			expenseWith("exp-1", ana, 100, map[string]float64{ben: 50}),
			expenseWith("exp-2", ben, 40, map[string]float64{ana: 20}),
		}
		created := &Settlement{ID: "stl-3", PayerID: ben, ReceiverID: ana, Amount: 30}

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(items, nil)
		store.EXPECT().Create(ctx, testTripID, ben, ana, 30.0, "EUR").Return(created, nil)
		// Both directions get locked so neither side double-settles
		expenses.EXPECT().
			LockSplitsToSettlement(ctx, []string{"exp-1-split-" + ben, "exp-2-split-" + ana}, "stl-3").
			Return(nil)

		_, err := svc.CreateSettlement(ctx, ben, &CreateSettlementRequest{TripID: testTripID, OtherTravelerID: ana})
		require.NoError(t, err)
	})

	t.Run("zero net with pending splits creates a zero settlement", func(t *testing.T) {
		svc, store, expenses, trips := newTestService(t)

		items := []*expense.ExpenseWithSplits{
			expenseWith("exp-1", ana, 50, map[string]float64{ben: 25}),
			expenseWith("exp-2", ben, 50, map[string]float64{ana: 25}),
		}
		created := &Settlement{ID: "stl-4", PayerID: ben, ReceiverID: ana, Amount: 0}

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(items, nil)
		store.EXPECT().Create(ctx, testTripID, ben, ana, 0.0, "EUR").Return(created, nil)
		expenses.EXPECT().LockSplitsToSettlement(ctx, gomock.Any(), "stl-4").Return(nil)

		got, err := svc.CreateSettlement(ctx, ben, &CreateSettlementRequest{TripID: testTripID, OtherTravelerID: ana})
		require.NoError(t, err)
		assert.Zero(t, got.Amount)
	})

	t.Run("nothing outstanding between the pair", func(t *testing.T) {
		svc, _, expenses, trips := newTestService(t)

		trips.EXPECT().GetByID(ctx, testTripID).Return(testTrip(), nil)
		expenses.EXPECT().ListByTripIDWithSplits(ctx, testTripID).Return(nil, nil)

		_, err := svc.CreateSettlement(ctx, ben, &CreateSettlementRequest{TripID: testTripID, OtherTravelerID: ana})
		assert.ErrorIs(t, err, ErrAlreadySettled)
	})

	t.Run("cannot settle with yourself", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CreateSettlement(ctx, ana, &CreateSettlementRequest{TripID: testTripID, OtherTravelerID: ana})
		assert.ErrorIs(t, err, ErrCannotSettleSelf)
	})

	t.Run("trip not found", func(t *testing.T) {
		svc, _, _, trips := newTestService(t)

		trips.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := svc.CreateSettlement(ctx, ana, &CreateSettlementRequest{TripID: "missing", OtherTravelerID: ben})
		assert.ErrorIs(t, err, ErrTripNotFound)
	})
}

func TestMarkAsPaid(t *testing.T) {
	ctx := context.Background()

	pending := func() *Settlement {
		return &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusPending}
	}

	tests := []struct {
		name       string
		travelerID string
		settlement *Settlement
		wantErr    error
	}{
		{
			name:       "payer marks as paid",
			travelerID: ben,
			settlement: pending(),
		},
		{
			name:       "receiver cannot mark as paid",
			travelerID: ana,
			settlement: pending(),
			wantErr:    ErrNotPayer,
		},
		{
			name:       "already paid",
			travelerID: ben,
			settlement: &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusPaid},
			wantErr:    ErrInvalidStatusChange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, _, _ := newTestService(t)

			store.EXPECT().GetByID(ctx, "stl-1").Return(tt.settlement, nil)
			if tt.wantErr == nil {
				updated := &Settlement{ID: "stl-1", Status: SettlementStatusPaid}
				store.EXPECT().UpdateStatus(ctx, "stl-1", SettlementStatusPaid).Return(updated, nil)
			}

			got, err := svc.MarkAsPaid(ctx, "stl-1", tt.travelerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, SettlementStatusPaid, got.Status)
		})
	}

	t.Run("not found", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		store.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := svc.MarkAsPaid(ctx, "missing", ben)
		assert.ErrorIs(t, err, ErrSettlementNotFound)
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("receiver confirms and splits are cleared", func(t *testing.T) {
		svc, store, expenses, _ := newTestService(t)

		paid := &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusPaid}
		confirmed := &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusConfirmed}

		store.EXPECT().GetByID(ctx, "stl-1").Return(paid, nil)
		store.EXPECT().UpdateStatus(ctx, "stl-1", SettlementStatusConfirmed).Return(confirmed, nil)
		expenses.EXPECT().ConfirmSplitsBySettlement(ctx, "stl-1").Return(nil)

		got, err := svc.Confirm(ctx, "stl-1", ana)
		require.NoError(t, err)
		assert.Equal(t, SettlementStatusConfirmed, got.Status)
	})

	t.Run("payer cannot confirm", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		paid := &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusPaid}
		store.EXPECT().GetByID(ctx, "stl-1").Return(paid, nil)

		_, err := svc.Confirm(ctx, "stl-1", ben)
		assert.ErrorIs(t, err, ErrNotReceiver)
	})

	t.Run("cannot confirm before payment is marked", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		pending := &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusPending}
		store.EXPECT().GetByID(ctx, "stl-1").Return(pending, nil)

		_, err := svc.Confirm(ctx, "stl-1", ana)
		assert.ErrorIs(t, err, ErrInvalidStatusChange)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("receiver rejects and splits are released", func(t *testing.T) {
		svc, store, expenses, _ := newTestService(t)

		paid := &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusPaid}
		rejected := &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusRejected}

		store.EXPECT().GetByID(ctx, "stl-1").Return(paid, nil)
		store.EXPECT().UpdateStatus(ctx, "stl-1", SettlementStatusRejected).Return(rejected, nil)
		expenses.EXPECT().UnlockSplitsFromSettlement(ctx, "stl-1").Return(nil)

		got, err := svc.Reject(ctx, "stl-1", ana)
		require.NoError(t, err)
		assert.Equal(t, SettlementStatusRejected, got.Status)
	})

	t.Run("cannot reject a confirmed settlement", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		confirmed := &Settlement{ID: "stl-1", PayerID: ben, ReceiverID: ana, Status: SettlementStatusConfirmed}
		store.EXPECT().GetByID(ctx, "stl-1").Return(confirmed, nil)

		_, err := svc.Reject(ctx, "stl-1", ana)
		assert.ErrorIs(t, err, ErrInvalidStatusChange)
	})

	t.Run("store failure bubbles up", func(t *testing.T) {
		svc, store, _, _ := newTestService(t)

		storeErr := errors.New("connection reset")
		store.EXPECT().GetByID(ctx, "stl-1").Return(nil, storeErr)

		_, err := svc.Reject(ctx, "stl-1", ana)
		assert.ErrorIs(t, err, storeErr)
	})
}
