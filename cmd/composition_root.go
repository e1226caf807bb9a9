package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	deskhttp "deliverydesk/internal/adapters/in/http"
	"deliverydesk/internal/adapters/out/catalog"
	"deliverydesk/internal/adapters/out/memory"
	"deliverydesk/internal/adapters/out/postgres"
	"deliverydesk/internal/adapters/out/redisstore"
	"deliverydesk/internal/core/application/usecases/commands"
	"deliverydesk/internal/core/application/usecases/queries"
	"deliverydesk/internal/core/domain/services"
	"deliverydesk/internal/core/ports"
	"deliverydesk/internal/jobs"
	"deliverydesk/internal/pkg/logger"
	"deliverydesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	cfg     Config
	log     *logger.Logger
	store   ports.KeyValueStore
	closers []func() error

	registry   *prometheus.Registry
	uowFactory *catalog.UnitOfWorkFactory
	lifecycle  services.DeliveryLifecycle
	engine     services.OrderQuery

	deliveryMetrics  *metrics.DeliveryMetrics
	dashboardMetrics *metrics.DashboardMetrics
	cronMetrics      *metrics.CronJobMetrics
}

// NewCompositionRoot opens the configured store and builds the shared
// services. Close releases the store.
func NewCompositionRoot(ctx context.Context, cfg Config, log *logger.Logger) (*CompositionRoot, error) {
	if log == nil {
		log = logger.Nop()
	}

	store, closer, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newCompositionRoot(cfg, log, store, closer)
}

// NewCompositionRootWithStore wires the application over an existing store.
func NewCompositionRootWithStore(cfg Config, log *logger.Logger, store ports.KeyValueStore) (*CompositionRoot, error) {
	if log == nil {
		log = logger.Nop()
	}
	return newCompositionRoot(cfg, log, store, nil)
}

func newCompositionRoot(
	cfg Config,
	log *logger.Logger,
	store ports.KeyValueStore,
	closer func() error,
) (*CompositionRoot, error) {
	lifecycle, err := services.NewDeliveryLifecycle(cfg.UserID(), func() time.Time { return time.Now().UTC() })
	if err != nil {
		return nil, err
	}
	engine, err := services.NewOrderQuery(cfg.UserID())
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	root := &CompositionRoot{
		cfg:              cfg,
		log:              log,
		store:            store,
		registry:         registry,
		uowFactory:       catalog.NewUnitOfWorkFactory(store),
		lifecycle:        lifecycle,
		engine:           engine,
		deliveryMetrics:  metrics.NewDeliveryMetrics(registry),
		dashboardMetrics: metrics.NewDashboardMetrics(registry),
		cronMetrics:      metrics.NewCronJobMetrics(registry),
	}
	if closer != nil {
		root.closers = append(root.closers, closer)
	}
	return root, nil
}

// OpenStore connects the backend named by cfg.Storage.
func OpenStore(ctx context.Context, cfg Config) (ports.KeyValueStore, func() error, error) {
	switch cfg.Storage {
	case StorageMemory, "":
		return memory.NewStore(nil), nil, nil

	case StorageRedis:
		store, err := redisstore.New(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case StoragePostgres:
		db, err := gorm.Open(gormpostgres.Open(cfg.DBDsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		store, err := postgres.NewStore(db)
		if err != nil {
			_ = sqlDB.Close()
			return nil, nil, err
		}
		return store, sqlDB.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
}

// Close releases the store connections.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

func (c *CompositionRoot) Logger() *logger.Logger {
	return c.log
}

func (c *CompositionRoot) Store() ports.KeyValueStore {
	return c.store
}

// MetricsHandler serves the private registry.
func (c *CompositionRoot) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) repository() ports.CatalogRepository {
	return catalog.NewRepository(c.store)
}

func (c *CompositionRoot) lifecycleDeps() commands.LifecycleDeps {
	return commands.LifecycleDeps{
		UoWFactory: c.catalogUoWFactory(),
		Lifecycle:  c.lifecycle,
		Logger:     c.log,
		Metrics:    c.deliveryMetrics,
	}
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateStoreDeliveryCommandHandler() commands.StoreDeliveryCommandHandler {
	return commands.NewStoreDeliveryCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateContinueDeliveryCommandHandler() commands.ContinueDeliveryCommandHandler {
	return commands.NewContinueDeliveryCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	return commands.NewFailDeliveryCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateLoseDeliveryCommandHandler() commands.LoseDeliveryCommandHandler {
	return commands.NewLoseDeliveryCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateBulkAcceptCommandHandler() commands.BulkAcceptCommandHandler {
	return commands.NewBulkAcceptCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateBulkCompleteCommandHandler() commands.BulkCompleteCommandHandler {
	return commands.NewBulkCompleteCommandHandler(c.lifecycleDeps())
}

func (c *CompositionRoot) CreateImportCollectionCommandHandler() commands.ImportCollectionCommandHandler {
	return commands.NewImportCollectionCommandHandler(c.catalogUoWFactory(), c.log)
}

func (c *CompositionRoot) CreateQueryOrdersQueryHandler() queries.QueryOrdersQueryHandler {
	return queries.NewQueryOrdersQueryHandler(c.repository(), c.engine)
}

func (c *CompositionRoot) CreateGetDashboardSummaryQueryHandler() queries.GetDashboardSummaryQueryHandler {
	return queries.NewGetDashboardSummaryQueryHandler(c.repository(), services.NewDashboardAggregator())
}

func (c *CompositionRoot) CreateExportCollectionQueryHandler() queries.ExportCollectionQueryHandler {
	return queries.NewExportCollectionQueryHandler(c.repository())
}

func (c *CompositionRoot) CreateGetSchemaVersionQueryHandler() queries.GetSchemaVersionQueryHandler {
	return queries.NewGetSchemaVersionQueryHandler(c.repository())
}

// CreateServer wires every use case into the HTTP boundary.
func (c *CompositionRoot) CreateServer() *deskhttp.Server {
	return deskhttp.NewServer(deskhttp.Handlers{
		TakeOrder:        c.CreateTakeOrderCommandHandler(),
		StoreDelivery:    c.CreateStoreDeliveryCommandHandler(),
		ContinueDelivery: c.CreateContinueDeliveryCommandHandler(),
		CompleteDelivery: c.CreateCompleteDeliveryCommandHandler(),
		FailDelivery:     c.CreateFailDeliveryCommandHandler(),
		LoseDelivery:     c.CreateLoseDeliveryCommandHandler(),
		BulkAccept:       c.CreateBulkAcceptCommandHandler(),
		BulkComplete:     c.CreateBulkCompleteCommandHandler(),
		ImportCollection: c.CreateImportCollectionCommandHandler(),
		QueryOrders:      c.CreateQueryOrdersQueryHandler(),
		DashboardSummary: c.CreateGetDashboardSummaryQueryHandler(),
		ExportCollection: c.CreateExportCollectionQueryHandler(),
		SchemaVersion:    c.CreateGetSchemaVersionQueryHandler(),
	}, c.log)
}

func (c *CompositionRoot) CreateDashboardSnapshotJob() *jobs.DashboardSnapshotJob {
	return jobs.NewDashboardSnapshotJob(
		c.CreateGetDashboardSummaryQueryHandler(),
		c.cfg.DashboardSchedule,
		c.dashboardMetrics,
		c.cronMetrics,
		c.log,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDashboardSnapshotJob())
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}
