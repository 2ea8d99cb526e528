package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/handler"
	mocks "github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/handler/mocks"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	catalog *mocks.MockCatalog
	carts   *mocks.MockCarts
	orders  *mocks.MockOrders
}

func newTestRouter(t *testing.T) (chi.Router, handlerMocks) {
	m := handlerMocks{
		catalog: mocks.NewMockCatalog(t),
		carts:   mocks.NewMockCarts(t),
		orders:  mocks.NewMockOrders(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.catalog, m.carts, m.orders)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func doRequest(t *testing.T, r chi.Router, method, target, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(data)
}

func TestHTTPHandler_GetProduct(t *testing.T) {
	validProduct := entities.Product{
		ID:        "p1",
		BasePrice: 89900,
		Stock:     4,
		Name:      entities.LocalizedText{FR: "Table en chêne"},
	}

	testCases := []struct {
		name         string
		productID    string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:      "success",
			productID: "p1",
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().
					ProductByID(mock.Anything, "p1").
					Return(validProduct, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"p1"`,
		},
		{
			name:      "not found",
			productID: "not-exist",
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().
					ProductByID(mock.Anything, "not-exist").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
		{
			name:      "internal error",
			productID: "p1",
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().
					ProductByID(mock.Anything, "p1").
					Return(entities.Product{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodGet, "/products/"+tc.productID, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_ListProducts(t *testing.T) {
	t.Run("query is parsed into the filter", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.catalog.EXPECT().
			List(mock.Anything, service.ListRequest{
				Search:   "table",
				SortBy:   "price-low",
				Page:     2,
				PageSize: 12,
			}).
			Return(service.ListResult{
				Items:       []entities.Product{{ID: "p1"}},
				TotalCount:  25,
				TotalPages:  3,
				CurrentPage: 2,
			}, nil).Once()

		res, body := doRequest(t, r, http.MethodGet,
			"/products?search=table&sort_by=price-low&page=2&page_size=12", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"total_count":25`)
		assert.Contains(t, body, `"current_page":2`)
	})

	t.Run("negative paging falls back to zero values", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.catalog.EXPECT().
			List(mock.Anything, service.ListRequest{}).
			Return(service.ListResult{Items: []entities.Product{}, CurrentPage: 1}, nil).Once()

		res, _ := doRequest(t, r, http.MethodGet, "/products?page=-3&min_price=abc", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("internal error", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.catalog.EXPECT().
			List(mock.Anything, mock.Anything).
			Return(service.ListResult{}, errors.New("db error")).Once()

		res, body := doRequest(t, r, http.MethodGet, "/products", "")
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Contains(t, body, `"internal server error"`)
	})
}

func TestHTTPHandler_QuoteProduct(t *testing.T) {
	validProduct := entities.Product{ID: "p1", BasePrice: 100000, Stock: 4}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"finish":"dark","dimensions":{"length":200,"width":90,"height":75}}`,
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().
					ProductByID(mock.Anything, "p1").
					Return(validProduct, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"unit_price":122222`,
		},
		{
			name: "defaults when dimensions are omitted",
			body: `{"finish":"natural"}`,
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().
					ProductByID(mock.Anything, "p1").
					Return(validProduct, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"unit_price":100000`,
		},
		{
			name:         "out of range dimensions",
			body:         `{"finish":"dark","dimensions":{"length":20,"width":90,"height":75}}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name: "product not found",
			body: `{"finish":"dark"}`,
			mockBehavior: func(m handlerMocks) {
				m.catalog.EXPECT().
					ProductByID(mock.Anything, "p1").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodPost, "/products/p1/quote", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetCart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.carts.EXPECT().
			Get(mock.Anything, "sess-1").
			Return([]entities.PricedLineItem{
				{ProductID: "p1", Quantity: 2, UnitPrice: 98890, TotalPrice: 197780, InStock: true},
			}, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/cart/sess-1", "")

		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"subtotal":197780`)

		var resp map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &resp))
		assert.Len(t, resp["items"], 1)
	})

	t.Run("internal error", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.carts.EXPECT().
			Get(mock.Anything, "sess-1").
			Return(nil, errors.New("backend gone")).Once()

		res, body := doRequest(t, r, http.MethodGet, "/cart/sess-1", "")
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.Contains(t, body, `"internal server error"`)
	})
}

func TestHTTPHandler_PutCart(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
	}{
		{
			name: "success",
			body: `{"lines":[{"product_id":"p1","quantity":2,"unit_price":89900}]}`,
			mockBehavior: func(m handlerMocks) {
				m.carts.EXPECT().
					Replace(mock.Anything, "sess-1", []entities.CartLine{{
						ProductID: "p1",
						Quantity:  2,
						UnitPrice: 89900,
					}}).
					Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "broken body",
			body:         `{"lines":[`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "line without product",
			body:         `{"lines":[{"quantity":2}]}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"lines":[{"product_id":"p1","quantity":1}]}`,
			mockBehavior: func(m handlerMocks) {
				m.carts.EXPECT().
					Replace(mock.Anything, "sess-1", mock.Anything).
					Return(errors.New("backend gone")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, _ := doRequest(t, r, http.MethodPut, "/cart/sess-1", tc.body)
			assert.Equal(t, tc.wantStatus, res.StatusCode)
		})
	}
}

func TestHTTPHandler_ClearCart(t *testing.T) {
	r, m := newTestRouter(t)

	m.carts.EXPECT().Clear(mock.Anything, "sess-1").Return(nil).Once()

	res, _ := doRequest(t, r, http.MethodDelete, "/cart/sess-1", "")
	assert.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"first_name": "Amel",
		"last_name": "Bensalem",
		"phone": "0550123456",
		"region": "alger",
		"session_id": "sess-1",
		"lines": [{"product_id":"p1","quantity":2,"finish":"natural"}]
	}`

	placed := entities.Order{
		ID:           "o1",
		OrderNumber:  "ORD-2026-1756500000000",
		TrackingCode: "TRACK-1756500000000000000",
		TotalAmount:  200800,
		Status:       entities.StatusPending,
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Run(func(ctx context.Context, in service.CreateOrderInput) {
						assert.Equal(t, "Amel", in.Customer.FirstName)
						assert.Equal(t, "alger", in.Region)
						assert.Equal(t, "sess-1", in.SessionID)
						require.Len(t, in.Lines, 1)
						assert.Equal(t, "p1", in.Lines[0].ProductID)
					}).
					Return(placed, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"success":true`,
		},
		{
			name:         "missing phone",
			body:         `{"first_name":"Amel","last_name":"Bensalem","region":"alger","lines":[{"product_id":"p1","quantity":1}]}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "empty lines",
			body:         `{"first_name":"Amel","last_name":"Bensalem","phone":"0550123456","region":"alger","lines":[]}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "product vanished",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"success":false`,
		},
		{
			name: "out of stock",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"success":false`,
		},
		{
			name: "persistence failure",
			body: validBody,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"failed to place order, please retry"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodPost, "/orders", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_TrackOrder(t *testing.T) {
	tracked := entities.Order{
		ID:           "o1",
		TrackingCode: "TRACK-42",
		Status:       entities.StatusOutForDelivery,
		TotalAmount:  200800,
	}

	testCases := []struct {
		name         string
		code         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			code: "TRACK-42",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					TrackOrder(mock.Anything, "TRACK-42").
					Return(tracked, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"OUT_FOR_DELIVERY"`,
		},
		{
			name: "not found",
			code: "TRACK-0",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					TrackOrder(mock.Anything, "TRACK-0").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodGet, "/orders/track/"+tc.code, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"CONFIRMED"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, "o1", entities.StatusConfirmed).
					Return(entities.Order{ID: "o1", Status: entities.StatusConfirmed}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"CONFIRMED"`,
		},
		{
			name:         "missing status",
			body:         `{}`,
			mockBehavior: func(m handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name: "rejected transition",
			body: `{"status":"DELIVERED"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, "o1", entities.StatusDelivered).
					Return(entities.Order{}, entities.ErrInvalidStatusTransition).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "order not found",
			body: `{"status":"CONFIRMED"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, "o1", entities.StatusConfirmed).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodPatch, "/orders/o1/status", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, body, tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_ListRegions(t *testing.T) {
	r, _ := newTestRouter(t)

	res, body := doRequest(t, r, http.MethodGet, "/regions", "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"id":"alger"`)
	assert.Contains(t, body, `"fee":800`)
}
