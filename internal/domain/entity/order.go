package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de cliente. El dashboard de fábrica cuenta PENDING y DISPATCHED.
const (
	OrderPending        = "PENDING"
	OrderPreparing      = "PREPARING"
	OrderReadyForPickup = "READY_FOR_PICKUP"
	OrderCompleted      = "COMPLETED"
	OrderCancelled      = "CANCELLED"
	OrderDispatched     = "DISPATCHED"
)

// CustomerOrder pedido de un cliente a un outlet.
type CustomerOrder struct {
	ID          string
	CustomerID  string
	OutletID    string
	OrderDate   time.Time
	PickupDate  time.Time
	Status      string
	TotalAmount decimal.Decimal
}
