// Package cli provides the labctl commands for laboratory operators.
package cli

import (
	"context"
	"errors"

	"dental_lab/internal/adapter/persistence/repository"
	"dental_lab/internal/config"
	"dental_lab/internal/infrastructure/database"
	"dental_lab/internal/infrastructure/events"
	"dental_lab/internal/infrastructure/localstorage"
	"dental_lab/internal/usecase"
	"dental_lab/internal/usecase/draft"
	"dental_lab/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Services are the use cases the commands drive.
type Services struct {
	Catalog    usecase.ICatalogUseCase
	Directory  usecase.IDirectoryUseCase
	WorkOrders usecase.IWorkOrderUseCase
	Drafts     *draft.Registry
}

// ServicesFactory connects to the backing stores. The returned func releases
// them.
type ServicesFactory func(ctx context.Context) (Services, func(), error)

// NewServicesFactory builds services from the process configuration, the same
// way the API does.
func NewServicesFactory(cfg config.Config, log *logrus.Logger) ServicesFactory {
	return func(ctx context.Context) (Services, func(), error) {
		ddb, err := database.ConnectDynamoDB(ctx, cfg, log)
		if err != nil {
			return Services{}, nil, err
		}
		store, err := localstorage.OpenSQLite(cfg.LocalStoragePath)
		if err != nil {
			return Services{}, nil, err
		}
		closers := []func() error{store.Close}

		var publisher interfaces.IEventPublisher = events.NoopPublisher{}
		if len(cfg.KafkaBrokers) > 0 {
			kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, log)
			if err != nil {
				store.Close()
				return Services{}, nil, err
			}
			closers = append(closers, kafka.Close)
			publisher = kafka
		}

		catalogRepo := repository.NewCatalogDynamoRepository(ddb, cfg.Tables.Services)
		directoryRepo := repository.NewDirectoryDynamoRepository(ddb, repository.DirectoryTables{
			Clinics:     cfg.Tables.Clinics,
			Dentists:    cfg.Tables.Dentists,
			Technicians: cfg.Tables.Technicians,
		})
		workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb, repository.WorkOrderTables{
			WorkOrders:        cfg.Tables.WorkOrders,
			WorkOrderServices: cfg.Tables.WorkOrderServices,
		})
		workOrders := usecase.NewWorkOrderUseCase(workOrderRepo, publisher, log)

		svc := Services{
			Catalog:    usecase.NewCatalogUseCase(catalogRepo, log),
			Directory:  usecase.NewDirectoryUseCase(directoryRepo),
			WorkOrders: workOrders,
			Drafts: draft.NewRegistry(draft.Dependencies{
				Catalog:   catalogRepo,
				Directory: directoryRepo,
				Submitter: workOrders,
				Logger:    log,
			}, store.ForOwner, nil),
		}
		release := func() {
			svc.Drafts.CloseAll(context.Background())
			var errs []error
			for i := len(closers) - 1; i >= 0; i-- {
				errs = append(errs, closers[i]())
			}
			if err := errors.Join(errs...); err != nil {
				log.WithError(err).Warn("closing backing stores")
			}
		}
		return svc, release, nil
	}
}
