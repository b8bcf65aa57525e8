package dto

import "time"

// ActivityEntry fila del widget de actividad reciente (derivada de batches, no mock).
type ActivityEntry struct {
	BatchNo          string    `json:"batch_no"`
	ProductName      string    `json:"product_name"`
	QuantityProduced int       `json:"quantity_produced"`
	ManufacturedDate time.Time `json:"manufactured_date"`
}

// FactoryStatsResponse resumen del dashboard de fábrica.
// Las claves de primer nivel van en camelCase: es el contrato que consume el frontend.
type FactoryStatsResponse struct {
	PendingCustomerOrders int             `json:"pendingCustomerOrders"`
	BatchesProduced       int             `json:"batchesProduced"`
	DispatchedOrders      int             `json:"dispatchedOrders"`
	RecentActivity        []ActivityEntry `json:"recentActivity"`
}
