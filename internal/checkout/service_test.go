package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/brewhub/internal/checkout"
)

func TestService_Checkout_Validation(t *testing.T) {
	productID := uuid.New()

	type testCase struct {
		name     string
		lines    []checkout.Line
		tendered string
		wantErr  error
	}

	tests := []testCase{
		{
			name:     "EmptyCart",
			lines:    nil,
			tendered: "100.00",
			wantErr:  checkout.ErrEmptyCart,
		},
		{
			name:     "NonNumericAmount",
			lines:    []checkout.Line{{ProductID: productID, UnitPrice: 4800, Quantity: 1}},
			tendered: "abc",
			wantErr:  checkout.ErrInvalidAmount,
		},
		{
			name:     "EmptyAmount",
			lines:    []checkout.Line{{ProductID: productID, UnitPrice: 4800, Quantity: 1}},
			tendered: "",
			wantErr:  checkout.ErrInvalidAmount,
		},
		{
			name:     "NegativeAmount",
			lines:    []checkout.Line{{ProductID: productID, UnitPrice: 4800, Quantity: 1}},
			tendered: "-5.00",
			wantErr:  checkout.ErrInvalidAmount,
		},
		{
			name:     "InsufficientPayment",
			lines:    []checkout.Line{{ProductID: productID, UnitPrice: 4800, Quantity: 2}},
			tendered: "95.99",
			wantErr:  checkout.ErrInsufficientPayment,
		},
		{
			name:     "ZeroQuantity",
			lines:    []checkout.Line{{ProductID: productID, UnitPrice: 4800, Quantity: 0}},
			tendered: "100.00",
			wantErr:  checkout.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations: validation failures must not touch the store.
			repo := checkout.NewMockRepository(ctrl)
			svc := checkout.NewService(repo)

			result, err := svc.Checkout(context.Background(), checkout.Params{
				Lines:    tt.lines,
				Tendered: tt.tendered,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

// Scenario from the register: two cappuccinos at 48.00 and one iced latte
// at 65.00, paid with 200.00.
func TestService_Checkout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkout.NewMockRepository(ctrl)
	tx := checkout.NewMockTx(ctrl)
	svc := checkout.NewService(repo)

	userID := uuid.New()
	p1 := uuid.New()
	p2 := uuid.New()

	lines := []checkout.Line{
		{ProductID: p1, UnitPrice: 4800, Quantity: 2},
		{ProductID: p2, UnitPrice: 6500, Quantity: 1},
	}

	customerID := uuid.New()
	orderID := uuid.New()
	paymentID := uuid.New()
	reportID := uuid.New()

	const total = int64(16100)

	repo.EXPECT().Begin(gomock.Any(), &userID).Return(tx, nil)
	tx.EXPECT().CreateCustomer(gomock.Any()).Return(customerID, nil)
	tx.EXPECT().CreateOrder(gomock.Any(), customerID, &userID, total).Return(orderID, nil)
	tx.EXPECT().AddItems(gomock.Any(), orderID, lines).Return(nil)
	tx.EXPECT().CreatePayment(gomock.Any(), orderID, int64(20000), int64(3900), total).Return(paymentID, nil)
	tx.EXPECT().LatestGeneralTotal(gomock.Any(), &userID).Return(int64(50000), true, nil)
	tx.EXPECT().CreateSalesReport(gomock.Any(), &userID, paymentID, total, int64(66100)).Return(reportID, nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	result, err := svc.Checkout(context.Background(), checkout.Params{
		UserID:   &userID,
		Lines:    lines,
		Tendered: "200.00",
	})
	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID)
	assert.Equal(t, paymentID, result.PaymentID)
	assert.Equal(t, reportID, result.ReportID)
	assert.Equal(t, total, result.Total)
	assert.Equal(t, int64(20000), result.Tendered)
	assert.Equal(t, int64(3900), result.Change)
	assert.Equal(t, int64(66100), result.GeneralTotal)
}

// First checkout for an owner with no prior reports anchors the running
// total at the sale amount.
func TestService_Checkout_NoPriorReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkout.NewMockRepository(ctrl)
	tx := checkout.NewMockTx(ctrl)
	svc := checkout.NewService(repo)

	userID := uuid.New()
	lines := []checkout.Line{{ProductID: uuid.New(), UnitPrice: 10000, Quantity: 1}}

	orderID := uuid.New()
	paymentID := uuid.New()

	repo.EXPECT().Begin(gomock.Any(), &userID).Return(tx, nil)
	tx.EXPECT().CreateCustomer(gomock.Any()).Return(uuid.New(), nil)
	tx.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), &userID, int64(10000)).Return(orderID, nil)
	tx.EXPECT().AddItems(gomock.Any(), orderID, lines).Return(nil)
	tx.EXPECT().CreatePayment(gomock.Any(), orderID, int64(10000), int64(0), int64(10000)).Return(paymentID, nil)
	tx.EXPECT().LatestGeneralTotal(gomock.Any(), &userID).Return(int64(0), false, nil)
	tx.EXPECT().CreateSalesReport(gomock.Any(), &userID, paymentID, int64(10000), int64(10000)).Return(uuid.New(), nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	result, err := svc.Checkout(context.Background(), checkout.Params{
		UserID:   &userID,
		Lines:    lines,
		Tendered: "100.00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10000), result.GeneralTotal)
	assert.Equal(t, int64(0), result.Change)
}

// Sequential checkouts chain the running total: G1 = T1, Gk = G(k-1) + Tk.
func TestService_Checkout_RunningTotalChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkout.NewMockRepository(ctrl)
	svc := checkout.NewService(repo)

	userID := uuid.New()
	totals := []int64{16100, 4800, 30000}

	var (
		prior     int64
		havePrior bool
		generals  []int64
	)

	repo.EXPECT().Begin(gomock.Any(), &userID).DoAndReturn(
		func(context.Context, *uuid.UUID) (checkout.Tx, error) {
			tx := checkout.NewMockTx(ctrl)
			tx.EXPECT().CreateCustomer(gomock.Any()).Return(uuid.New(), nil)
			tx.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), &userID, gomock.Any()).Return(uuid.New(), nil)
			tx.EXPECT().AddItems(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			tx.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
			tx.EXPECT().LatestGeneralTotal(gomock.Any(), &userID).Return(prior, havePrior, nil)
			tx.EXPECT().CreateSalesReport(gomock.Any(), &userID, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ *uuid.UUID, _ uuid.UUID, _, general int64) (uuid.UUID, error) {
					prior = general
					havePrior = true
					generals = append(generals, general)
					return uuid.New(), nil
				})
			tx.EXPECT().Commit().Return(nil)
			tx.EXPECT().Rollback().Return(nil)
			return tx, nil
		}).Times(len(totals))

	for _, total := range totals {
		_, err := svc.Checkout(context.Background(), checkout.Params{
			UserID:   &userID,
			Lines:    []checkout.Line{{ProductID: uuid.New(), UnitPrice: total, Quantity: 1}},
			Tendered: "500.00",
		})
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{16100, 20900, 50900}, generals)
}

func TestService_Checkout_DuplicateLinesMerged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkout.NewMockRepository(ctrl)
	tx := checkout.NewMockTx(ctrl)
	svc := checkout.NewService(repo)

	productID := uuid.New()
	orderID := uuid.New()

	repo.EXPECT().Begin(gomock.Any(), gomock.Nil()).Return(tx, nil)
	tx.EXPECT().CreateCustomer(gomock.Any()).Return(uuid.New(), nil)
	tx.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Nil(), int64(14400)).Return(orderID, nil)
	tx.EXPECT().
		AddItems(gomock.Any(), orderID, []checkout.Line{{ProductID: productID, UnitPrice: 4800, Quantity: 3}}).
		Return(nil)
	tx.EXPECT().CreatePayment(gomock.Any(), orderID, int64(15000), int64(600), int64(14400)).Return(uuid.New(), nil)
	tx.EXPECT().LatestGeneralTotal(gomock.Any(), gomock.Nil()).Return(int64(0), false, nil)
	tx.EXPECT().CreateSalesReport(gomock.Any(), gomock.Nil(), gomock.Any(), int64(14400), int64(14400)).Return(uuid.New(), nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Checkout(context.Background(), checkout.Params{
		Lines: []checkout.Line{
			{ProductID: productID, UnitPrice: 4800, Quantity: 2},
			{ProductID: productID, UnitPrice: 4800, Quantity: 1},
		},
		Tendered: "150.00",
	})
	require.NoError(t, err)
}

// A failing batch rolls back everything already staged; nothing after the
// failure runs.
func TestService_Checkout_AddItemsFailureRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkout.NewMockRepository(ctrl)
	tx := checkout.NewMockTx(ctrl)
	svc := checkout.NewService(repo)

	lines := []checkout.Line{{ProductID: uuid.New(), UnitPrice: 4800, Quantity: 1}}

	repo.EXPECT().Begin(gomock.Any(), gomock.Nil()).Return(tx, nil)
	tx.EXPECT().CreateCustomer(gomock.Any()).Return(uuid.New(), nil)
	tx.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Nil(), int64(4800)).Return(uuid.New(), nil)
	tx.EXPECT().AddItems(gomock.Any(), gomock.Any(), lines).Return(checkout.ErrProductNotFound)
	tx.EXPECT().Rollback().Return(nil)

	result, err := svc.Checkout(context.Background(), checkout.Params{
		Lines:    lines,
		Tendered: "48.00",
	})
	assert.ErrorIs(t, err, checkout.ErrProductNotFound)
	assert.Nil(t, result)
}

func TestService_Receipt(t *testing.T) {
	orderID := uuid.New()
	orderDate := time.Date(2025, 1, 12, 12, 1, 0, 0, time.UTC)

	order := &checkout.Order{ID: orderID, CustomerID: uuid.New(), OrderDate: orderDate, Total: 16100}
	payment := &checkout.Payment{ID: uuid.New(), OrderID: orderID, Amount: 20000, Change: 3900, TotalPaid: 16100}
	items := []*checkout.Item{
		{OrderID: orderID, Name: "Cappuccino", Description: "with chocolate", UnitPrice: 4800, Quantity: 2},
		{OrderID: orderID, Name: "Iced Latte", Description: "with milk", UnitPrice: 6500, Quantity: 1},
	}

	type testCase struct {
		name      string
		setupMock func(m *checkout.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *checkout.MockRepository) {
				m.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)
				m.EXPECT().GetPaymentByOrder(gomock.Any(), orderID).Return(payment, nil)
				m.EXPECT().ListOrderItems(gomock.Any(), orderID).Return(items, nil)
			},
		},
		{
			name: "OrderMissing",
			setupMock: func(m *checkout.MockRepository) {
				m.EXPECT().GetOrder(gomock.Any(), orderID).Return(nil, checkout.ErrNotFound)
			},
			wantErr: checkout.ErrReceiptUnavailable,
		},
		{
			name: "PaymentMissing",
			setupMock: func(m *checkout.MockRepository) {
				m.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)
				m.EXPECT().GetPaymentByOrder(gomock.Any(), orderID).Return(nil, checkout.ErrNotFound)
			},
			wantErr: checkout.ErrReceiptUnavailable,
		},
		{
			name: "NoItems",
			setupMock: func(m *checkout.MockRepository) {
				m.EXPECT().GetOrder(gomock.Any(), orderID).Return(order, nil)
				m.EXPECT().GetPaymentByOrder(gomock.Any(), orderID).Return(payment, nil)
				m.EXPECT().ListOrderItems(gomock.Any(), orderID).Return(nil, nil)
			},
			wantErr: checkout.ErrReceiptUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := checkout.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := checkout.NewService(repo)
			receipt, err := svc.Receipt(context.Background(), orderID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, receipt)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, orderID, receipt.OrderID)
			assert.Equal(t, orderDate, receipt.Date)
			assert.Equal(t, int64(16100), receipt.Total)
			assert.Equal(t, int64(20000), receipt.Cash)
			assert.Equal(t, int64(3900), receipt.Change)
			require.Len(t, receipt.Lines, 2)
			assert.Equal(t, "Cappuccino", receipt.Lines[0].Name)
			assert.Equal(t, int64(2), receipt.Lines[0].Quantity)
		})
	}
}

func TestService_Receipt_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := checkout.NewMockRepository(ctrl)
	svc := checkout.NewService(repo)

	orderID := uuid.New()
	storeErr := errors.New("connection reset")

	repo.EXPECT().GetOrder(gomock.Any(), orderID).Return(nil, storeErr)

	_, err := svc.Receipt(context.Background(), orderID)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, checkout.ErrReceiptUnavailable)
}
