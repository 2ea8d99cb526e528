package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/service"
	mocks "github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/service/mocks"
	txMocks "github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	type Mocks struct {
		repo     *mocks.MockOrderRepo
		catalog  *mocks.MockCatalogLookup
		carts    *mocks.MockCartStore
		notifier *mocks.MockNotifier
	}
	type MockBehavior func(m Mocks)

	oakTable := entities.Product{
		ID:        "p1",
		ManagerID: "mgr-1",
		BasePrice: 100000,
		Stock:     10,
		Active:    true,
		Name:      entities.LocalizedText{FR: "Table en chêne"},
	}
	walnutChair := entities.Product{
		ID:        "p2",
		ManagerID: "mgr-2",
		BasePrice: 15000,
		Stock:     20,
		Active:    true,
		Name:      entities.LocalizedText{FR: "Chaise en noyer"},
	}

	validInput := service.CreateOrderInput{
		Customer:  entities.Customer{FirstName: "Amel", LastName: "Bensalem", Phone: "0550123456"},
		Region:    "alger",
		Lines:     []service.OrderLine{{ProductID: "p1", Quantity: 2, Finish: "natural"}},
		SessionID: "sess-1",
	}

	testCases := []struct {
		name         string
		input        service.CreateOrderInput
		mockBehavior MockBehavior
		wantErr      error
		check        func(t *testing.T, got entities.Order)
	}{
		{
			name: "missing first name",
			input: service.CreateOrderInput{
				Customer: entities.Customer{LastName: "Bensalem", Phone: "0550123456"},
				Region:   "alger",
				Lines:    validInput.Lines,
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name: "no lines",
			input: service.CreateOrderInput{
				Customer: validInput.Customer,
				Region:   "alger",
			},
			mockBehavior: func(m Mocks) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:  "product not found aborts the whole order",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.catalog.EXPECT().
					ProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{}, nil).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:  "OK",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.catalog.EXPECT().
					ProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{oakTable}, nil).Once()
				m.repo.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Once()
				m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().IncrementSales(mock.Anything, "p1", 2).Return(nil).Once()
				m.notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()
				m.carts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Equal(t, 200000, got.Subtotal)
				assert.Equal(t, 800, got.DeliveryPrice)
				assert.Equal(t, 200800, got.TotalAmount)
				assert.Equal(t, entities.StatusPending, got.Status)
				assert.Equal(t, entities.PriorityMedium, got.Priority)
				assert.Equal(t, "mgr-1", got.ManagerID)
				assert.Equal(t, "amel.bensalem@guest.local", got.Customer.Email)
				assert.True(t, strings.HasPrefix(got.OrderNumber, "ORD-"))
				assert.True(t, strings.HasPrefix(got.TrackingCode, "TRACK-"))
				require.Len(t, got.Items, 1)
				assert.Equal(t, 100000, got.Items[0].UnitPrice)
				assert.Equal(t, 200000, got.Items[0].TotalPrice)
				assert.Equal(t, "Table en chêne", got.Items[0].ProductName)
				assert.Equal(t, got.ID, got.Items[0].OrderID)
			},
		},
		{
			name: "customization adjusts the unit price",
			input: service.CreateOrderInput{
				Customer: validInput.Customer,
				Region:   "blida",
				Lines: []service.OrderLine{{
					ProductID:  "p1",
					Quantity:   1,
					Finish:     "dark",
					Dimensions: entities.Dimensions{Length: 200, Width: 90, Height: 75},
				}},
			},
			mockBehavior: func(m Mocks) {
				m.catalog.EXPECT().
					ProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{oakTable}, nil).Once()
				m.repo.EXPECT().DecrementStock(mock.Anything, "p1", 1).Return(nil).Once()
				m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().IncrementSales(mock.Anything, "p1", 1).Return(nil).Once()
				m.notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Order) {
				// 100000 × (200×90)/(180×90) × 1.10, rounded
				assert.Equal(t, 122222, got.Items[0].UnitPrice)
				assert.Equal(t, 122222+1000, got.TotalAmount)
			},
		},
		{
			name: "order spanning managers carries none",
			input: service.CreateOrderInput{
				Customer:  validInput.Customer,
				Region:    "alger",
				SessionID: "sess-1",
				Lines: []service.OrderLine{
					{ProductID: "p1", Quantity: 1},
					{ProductID: "p2", Quantity: 1},
				},
			},
			mockBehavior: func(m Mocks) {
				m.catalog.EXPECT().
					ProductsByIDs(mock.Anything, []string{"p1", "p2"}).
					Return([]entities.Product{oakTable, walnutChair}, nil).Once()
				m.repo.EXPECT().DecrementStock(mock.Anything, mock.Anything, 1).Return(nil).Times(2)
				m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().IncrementSales(mock.Anything, mock.Anything, 1).Return(nil).Times(2)
				m.notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()
				m.carts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()
			},
			check: func(t *testing.T, got entities.Order) {
				assert.Empty(t, got.ManagerID)
				assert.Equal(t, 115000, got.Subtotal)
			},
		},
		{
			name:  "insufficient stock rolls back",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.catalog.EXPECT().
					ProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{oakTable}, nil).Once()
				m.repo.EXPECT().DecrementStock(mock.Anything, "p1", 2).
					Return(entities.ErrInsufficientStock).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "retries with fresh codes on a uniqueness conflict",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.catalog.EXPECT().
					ProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{oakTable}, nil).Once()
				m.repo.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Times(2)
				m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(entities.ErrUniqueConflict).Once()
				m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).
					Return(nil).Once()
				m.repo.EXPECT().IncrementSales(mock.Anything, "p1", 2).Return(nil).Once()
				m.notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).Return(nil).Once()
				m.carts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()
			},
		},
		{
			name:  "publish failure does not fail the checkout",
			input: validInput,
			mockBehavior: func(m Mocks) {
				m.catalog.EXPECT().
					ProductsByIDs(mock.Anything, []string{"p1"}).
					Return([]entities.Product{oakTable}, nil).Once()
				m.repo.EXPECT().DecrementStock(mock.Anything, "p1", 2).Return(nil).Once()
				m.repo.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil).Once()
				m.repo.EXPECT().IncrementSales(mock.Anything, "p1", 2).Return(nil).Once()
				m.notifier.EXPECT().OrderCreated(mock.Anything, mock.Anything).
					Return(errors.New("broker down")).Once()
				m.carts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Mocks{
				repo:     mocks.NewMockOrderRepo(t),
				catalog:  mocks.NewMockCatalogLookup(t),
				carts:    mocks.NewMockCartStore(t),
				notifier: mocks.NewMockNotifier(t),
			}
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(m)

			svc := service.NewOrderService(logger, tx, m.repo, m.catalog, m.carts, m.notifier)

			got, err := svc.CreateOrder(context.Background(), tc.input)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if tc.check != nil {
				tc.check(t, got)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	testCases := []struct {
		name         string
		orderID      string
		next         entities.OrderStatus
		mockBehavior MockBehavior
		wantErr      error
		wantStatus   entities.OrderStatus
	}{
		{
			name:         "unknown status",
			orderID:      "o1",
			next:         entities.OrderStatus("SHIPPED"),
			mockBehavior: func(repo *mocks.MockOrderRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:    "pending to confirmed",
			orderID: "o1",
			next:    entities.StatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByID(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", Status: entities.StatusPending}, nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, "o1", entities.StatusConfirmed).
					Return(nil).Once()
			},
			wantStatus: entities.StatusConfirmed,
		},
		{
			name:    "skipping ahead is rejected",
			orderID: "o1",
			next:    entities.StatusDelivered,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByID(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", Status: entities.StatusPending}, nil).Once()
			},
			wantErr: entities.ErrInvalidStatusTransition,
		},
		{
			name:    "cancelling restores stock",
			orderID: "o1",
			next:    entities.StatusCancelled,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByID(mock.Anything, "o1").
					Return(entities.Order{
						ID:     "o1",
						Status: entities.StatusConfirmed,
						Items: []entities.OrderItem{
							{ProductID: "p1", Quantity: 2},
							{ProductID: "p2", Quantity: 1},
						},
					}, nil).Once()
				repo.EXPECT().RestoreStock(mock.Anything, "p1", 2).Return(nil).Once()
				repo.EXPECT().RestoreStock(mock.Anything, "p2", 1).Return(nil).Once()
				repo.EXPECT().UpdateOrderStatus(mock.Anything, "o1", entities.StatusCancelled).
					Return(nil).Once()
			},
			wantStatus: entities.StatusCancelled,
		},
		{
			name:    "delivered is terminal",
			orderID: "o1",
			next:    entities.StatusCancelled,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByID(mock.Anything, "o1").
					Return(entities.Order{ID: "o1", Status: entities.StatusDelivered}, nil).Once()
			},
			wantErr: entities.ErrInvalidStatusTransition,
		},
		{
			name:    "order not found",
			orderID: "missing",
			next:    entities.StatusConfirmed,
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByID(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogLookup(t)
			carts := mocks.NewMockCartStore(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(repo)

			svc := service.NewOrderService(logger, tx, repo, catalog, carts, notifier)

			got, err := svc.UpdateStatus(context.Background(), tc.orderID, tc.next)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

func TestOrderService_TrackOrder(t *testing.T) {
	type MockBehavior func(repo *mocks.MockOrderRepo)

	tracked := entities.Order{ID: "o1", TrackingCode: "TRACK-42", Status: entities.StatusConfirmed}

	testCases := []struct {
		name         string
		code         string
		mockBehavior MockBehavior
		wantErr      error
		want         entities.Order
	}{
		{
			name: "found",
			code: "TRACK-42",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByTrackingCode(mock.Anything, "TRACK-42").
					Return(tracked, nil).Once()
			},
			want: tracked,
		},
		{
			name: "not found stops retrying",
			code: "TRACK-0",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByTrackingCode(mock.Anything, "TRACK-0").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "second attempt succeeds",
			code: "TRACK-42",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().OrderByTrackingCode(mock.Anything, "TRACK-42").
					Return(entities.Order{}, errors.New("temporary error")).Once()
				repo.EXPECT().OrderByTrackingCode(mock.Anything, "TRACK-42").
					Return(tracked, nil).Once()
			},
			want: tracked,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			catalog := mocks.NewMockCatalogLookup(t)
			carts := mocks.NewMockCartStore(t)
			notifier := mocks.NewMockNotifier(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewOrderService(logger, tx, repo, catalog, carts, notifier)

			got, err := svc.TrackOrder(context.Background(), tc.code)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
