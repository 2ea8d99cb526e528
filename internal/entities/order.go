package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

var (
	ErrProductNotFound         = errors.New("product not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrValidation              = errors.New("invalid input")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrUniqueConflict          = errors.New("unique constraint conflict")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

type OrderStatus string

const (
	StatusPending          OrderStatus = "PENDING"
	StatusConfirmed        OrderStatus = "CONFIRMED"
	StatusInProgress       OrderStatus = "IN_PROGRESS"
	StatusReadyForDelivery OrderStatus = "READY_FOR_DELIVERY"
	StatusOutForDelivery   OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered        OrderStatus = "DELIVERED"
	StatusCancelled        OrderStatus = "CANCELLED"
)

// statusRank orders the forward path of the fulfillment machine.
var statusRank = map[OrderStatus]int{
	StatusPending:          0,
	StatusConfirmed:        1,
	StatusInProgress:       2,
	StatusReadyForDelivery: 3,
	StatusOutForDelivery:   4,
	StatusDelivered:        5,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == StatusCancelled
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the fulfillment machine allows moving from
// s to next: strictly one step forward along the delivery path, or to
// CANCELLED from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	from, okFrom := statusRank[s]
	to, okTo := statusRank[next]
	return okFrom && okTo && to == from+1
}

type OrderPriority string

const (
	PriorityLow    OrderPriority = "LOW"
	PriorityMedium OrderPriority = "MEDIUM"
	PriorityHigh   OrderPriority = "HIGH"
	PriorityUrgent OrderPriority = "URGENT"
)

func (p OrderPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Customer is the identity snapshot captured on an order.
type Customer struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// Customization is the finish and dimensions snapshot frozen on an order item.
type Customization struct {
	Finish     string
	Dimensions Dimensions
}

type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   int
	TotalPrice  int

	Customization Customization
}

type Order struct {
	ID           string
	OrderNumber  string
	TrackingCode string

	// ManagerID is empty when the order spans products of several managers.
	ManagerID string

	Customer Customer
	Region   string

	DeliveryPrice int
	Subtotal      int
	TotalAmount   int

	Status   OrderStatus
	Priority OrderPriority

	Items []OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(o)
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Customer{})
	gob.Register(Customization{})
}
