package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/bakeryhub/bakeryhub-api/internal/application/dto"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/repository"
)

const recentActivityLimit = 5 // filas del widget de actividad reciente

// StatsUseCase resumen del dashboard de fábrica, derivado de la base de datos
// (pedidos pendientes/despachados, lotes producidos hoy, actividad reciente).
//
// Fuente de datos: FactoryStatsRepository (consultas read-only).
type StatsUseCase struct {
	statsRepo repository.FactoryStatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.FactoryStatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetStats construye el FactoryStatsResponse.
//
// Cuatro llamadas en paralelo:
//  1. CountOrdersByStatus(PENDING)    -> PendingCustomerOrders
//  2. CountBatchesManufacturedOn(hoy) -> BatchesProduced
//  3. CountOrdersByStatus(DISPATCHED) -> DispatchedOrders
//  4. RecentBatches(5)                -> RecentActivity
func (uc *StatsUseCase) GetStats(ctx context.Context) (*dto.FactoryStatsResponse, error) {
	today := time.Now()

	type countResult struct {
		n   int
		err error
	}
	type activityResult struct {
		rows []repository.BatchActivityResult
		err  error
	}

	pendingCh := make(chan countResult, 1)
	producedCh := make(chan countResult, 1)
	dispatchedCh := make(chan countResult, 1)
	activityCh := make(chan activityResult, 1)

	go func() {
		n, err := uc.statsRepo.CountOrdersByStatus(ctx, entity.OrderPending)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountBatchesManufacturedOn(ctx, today)
		producedCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountOrdersByStatus(ctx, entity.OrderDispatched)
		dispatchedCh <- countResult{n, err}
	}()
	go func() {
		rows, err := uc.statsRepo.RecentBatches(ctx, recentActivityLimit)
		activityCh <- activityResult{rows, err}
	}()

	pending := <-pendingCh
	produced := <-producedCh
	dispatched := <-dispatchedCh
	activity := <-activityCh

	if pending.err != nil {
		return nil, fmt.Errorf("stats: pedidos pendientes: %w", pending.err)
	}
	if produced.err != nil {
		return nil, fmt.Errorf("stats: lotes de hoy: %w", produced.err)
	}
	if dispatched.err != nil {
		return nil, fmt.Errorf("stats: pedidos despachados: %w", dispatched.err)
	}
	if activity.err != nil {
		return nil, fmt.Errorf("stats: actividad reciente: %w", activity.err)
	}

	entries := make([]dto.ActivityEntry, 0, len(activity.rows))
	for _, row := range activity.rows {
		entries = append(entries, dto.ActivityEntry{
			BatchNo:          row.BatchNo,
			ProductName:      row.ProductName,
			QuantityProduced: row.QuantityProduced,
			ManufacturedDate: row.ManufacturedDate,
		})
	}

	return &dto.FactoryStatsResponse{
		PendingCustomerOrders: pending.n,
		BatchesProduced:       produced.n,
		DispatchedOrders:      dispatched.n,
		RecentActivity:        entries,
	}, nil
}
