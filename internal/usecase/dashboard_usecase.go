package usecase

import (
	"context"
	"dental_lab/internal/domain/entities"
	"dental_lab/internal/usecase/interfaces"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DashboardStats are the headline counts of one laboratory.
type DashboardStats struct {
	Clinics            int                              `json:"clinics"`
	Dentists           int                              `json:"dentists"`
	Technicians        int                              `json:"technicians"`
	ActiveServices     int                              `json:"active_services"`
	WorkOrders         int                              `json:"work_orders"`
	WorkOrdersByStatus map[entities.WorkOrderStatus]int `json:"work_orders_by_status"`
}

type IDashboardUseCase interface {
	Stats(ctx context.Context, ownerID string) (DashboardStats, error)
}

type DashboardUseCase struct {
	directory interfaces.IDirectoryRepository
	catalog   interfaces.ICatalogRepository
	orders    interfaces.IWorkOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(directory interfaces.IDirectoryRepository, catalog interfaces.ICatalogRepository, orders interfaces.IWorkOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{directory: directory, catalog: catalog, orders: orders}
}

// Stats runs every count concurrently; the first failure cancels the rest.
func (u *DashboardUseCase) Stats(ctx context.Context, ownerID string) (DashboardStats, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return DashboardStats{}, ErrInvalidOwnerID
	}

	statuses := entities.WorkOrderStatuses()
	perStatus := make([]int, len(statuses))
	var stats DashboardStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Clinics, err = u.directory.CountClinics(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		stats.Dentists, err = u.directory.CountDentists(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		stats.Technicians, err = u.directory.CountTechnicians(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveServices, err = u.catalog.CountActive(gctx, ownerID)
		return err
	})
	for i, st := range statuses {
		g.Go(func() (err error) {
			perStatus[i], err = u.orders.CountByStatus(gctx, ownerID, st)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return DashboardStats{}, err
	}

	stats.WorkOrdersByStatus = make(map[entities.WorkOrderStatus]int, len(statuses))
	for i, st := range statuses {
		stats.WorkOrdersByStatus[st] = perStatus[i]
		stats.WorkOrders += perStatus[i]
	}
	return stats, nil
}
