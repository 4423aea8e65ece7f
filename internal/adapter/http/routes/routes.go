package routes

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "dental_lab/docs"
	"dental_lab/internal/adapter/http/handlers"
	"dental_lab/internal/adapter/persistence/repository"
	"dental_lab/internal/config"
	"dental_lab/internal/infrastructure/database"
	"dental_lab/internal/infrastructure/events"
	"dental_lab/internal/infrastructure/localstorage"
	"dental_lab/internal/infrastructure/payments"
	"dental_lab/internal/metrics"
	"dental_lab/internal/usecase"
	"dental_lab/internal/usecase/draft"
	"dental_lab/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	shutdownTimeout     = 15 * time.Second
	draftExpiryInterval = time.Minute
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Catalog   *handlers.CatalogHandler
	Directory *handlers.DirectoryHandler
	Draft     *handlers.DraftHandler
	WorkOrder *handlers.WorkOrderHandler
	Dashboard *handlers.DashboardHandler
	Payment   *handlers.SubscriptionPaymentHandler
}

// Run wires the service and serves until SIGINT or SIGTERM. Live draft
// sessions are unloaded, which saves their snapshots, before it returns.
func Run(cfg config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ddb, err := database.ConnectDynamoDB(ctx, cfg, log)
	if err != nil {
		return err
	}

	store, err := localstorage.OpenSQLite(cfg.LocalStoragePath)
	if err != nil {
		return err
	}
	defer store.Close()

	var publisher interfaces.IEventPublisher = events.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.NewKafkaPublisher(cfg.KafkaBrokers, log)
		if err != nil {
			return err
		}
		defer kafka.Close()
		publisher = kafka
	} else {
		log.Info("KAFKA_BROKERS not set; work order events are not published")
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.WithError(err).Warn("Mercado Pago gateway not configured")
	} else {
		gateway = mpGateway
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
	paymentRepo := repository.NewSubscriptionPaymentDynamoRepository(ddb, cfg.Tables.SubscriptionPayments)

	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo, publisher, log)
	directoryUseCase := usecase.NewDirectoryUseCase(directoryRepo)

	registry := draft.NewRegistry(draft.Dependencies{
		Catalog:   catalogRepo,
		Directory: directoryRepo,
		Submitter: workOrderUseCase,
		Logger:    log,
	}, store.ForOwner, nil)
	if cfg.DraftIdleTimeout > 0 {
		go registry.RunExpiry(ctx, draftExpiryInterval, cfg.DraftIdleTimeout)
	}

	h := Handlers{
		Catalog:   handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalogRepo, log)),
		Directory: handlers.NewDirectoryHandler(directoryUseCase),
		Draft:     handlers.NewDraftHandler(registry),
		WorkOrder: handlers.NewWorkOrderHandler(workOrderUseCase, directoryUseCase, cfg.ReportTaxRate),
		Dashboard: handlers.NewDashboardHandler(usecase.NewDashboardUseCase(directoryRepo, catalogRepo, workOrderRepo)),
		Payment: handlers.NewSubscriptionPaymentHandler(
			usecase.NewSubscriptionPaymentUseCase(paymentRepo, gateway, cfg.PaymentGatewayMock, usecase.PayerDefaults{}, log),
			cfg.PaymentGatewayMock,
			log,
		),
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           NewRouter(h, log),
		ReadHeaderTimeout: 15 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("starting dental lab API")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	registry.CloseAll(shutdownCtx)
	log.Info("server stopped")
	return nil
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(h Handlers, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	owned := v1.Group("", handlers.RequireOwner())
	addCatalogRoutes(owned, h.Catalog)
	addDirectoryRoutes(owned, h.Directory)
	addDraftRoutes(owned, h.Draft)
	addWorkOrderRoutes(owned, h.WorkOrder)
	addDashboardRoutes(owned, h.Dashboard)
	addSubscriptionRoutes(owned, h.Payment)
	return router
}

func setMiddlewares(router *gin.Engine, log *logrus.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("panic", recovered).Error("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(requestMetrics())
}

func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
