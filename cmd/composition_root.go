package cmd

import (
	"time"

	httpadapter "shoppingcart/internal/adapters/in/http"
	"shoppingcart/internal/adapters/out/kafka"
	"shoppingcart/internal/adapters/out/payment"
	"shoppingcart/internal/adapters/out/postgres"
	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/application/usecases/queries"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/jobs"
	"shoppingcart/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *log.Logger

	gateway   ports.PaymentGateway
	publisher ports.OrderEventPublisher
	metrics   *metrics.OrderMetrics
	closers   []func() error
}

// NewCompositionRoot wires adapters for config. Without a Stripe key refunds
// and charges go to the in-memory gateway; without Kafka brokers order events
// are dropped.
func NewCompositionRoot(config Config, gormDB *gorm.DB, registerer prometheus.Registerer, logger *log.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		metrics:    metrics.NewOrderMetrics(registerer),
	}

	if config.StripeSecretKey != "" {
		c.gateway = payment.NewStripeGateway(config.StripeSecretKey, nil, c.componentLogger("stripe-gateway"))
	} else {
		logger.Warn("STRIPE_SECRET_KEY is not set, using the in-memory payment gateway")
		c.gateway = payment.NewMemoryGateway(c.componentLogger("memory-gateway"))
	}

	if config.KafkaHost != "" {
		publisher := kafka.NewOrderEventPublisher(
			kafka.NewWriter(config.KafkaHost, config.KafkaOrderChangedTopic),
			c.componentLogger("order-event-publisher"),
		)
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	} else {
		c.publisher = kafka.NoopPublisher{}
	}

	return c
}

func (c *CompositionRoot) componentLogger(name string) *log.Entry {
	return c.logger.WithField("component", name)
}

func (c *CompositionRoot) lifecycleDeps() commands.LifecycleDeps {
	retry := commands.DefaultRetryConfig()
	if c.config.RetryAttempts > 0 {
		retry.MaxAttempts = c.config.RetryAttempts
	}
	return commands.LifecycleDeps{
		Publisher: c.publisher,
		Metrics:   c.metrics,
		Logger:    c.componentLogger("order-lifecycle"),
		Retry:     retry,
		Now:       time.Now,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return commands.NewOrderUoWFactory(c.uowFactory)
}

func (c *CompositionRoot) CreateCreateOrUpdateCategoryCommandHandler() *commands.CreateOrUpdateCategoryCommandHandler {
	h := commands.NewCreateOrUpdateCategoryCommandHandler(commands.NewCatalogUoWFactory(c.uowFactory))
	return &h
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() *commands.DeleteCategoryCommandHandler {
	h := commands.NewDeleteCategoryCommandHandler(commands.NewCatalogUoWFactory(c.uowFactory))
	return &h
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	h := commands.NewPlaceOrderCommandHandler(c.orderUoWFactory(), c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() *commands.UpdateOrderDetailsCommandHandler {
	h := commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory(), c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateRecordPaymentCommandHandler() *commands.RecordPaymentCommandHandler {
	h := commands.NewRecordPaymentCommandHandler(c.orderUoWFactory(), c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateStartProcessingCommandHandler() *commands.StartProcessingCommandHandler {
	h := commands.NewStartProcessingCommandHandler(c.orderUoWFactory(), c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateShipOrderCommandHandler() *commands.ShipOrderCommandHandler {
	h := commands.NewShipOrderCommandHandler(c.orderUoWFactory(), c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.gateway, c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateRefundOrderCommandHandler() *commands.RefundOrderCommandHandler {
	h := commands.NewRefundOrderCommandHandler(c.orderUoWFactory(), c.gateway, c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateSettleDelayedPaymentCommandHandler() *commands.SettleDelayedPaymentCommandHandler {
	h := commands.NewSettleDelayedPaymentCommandHandler(c.orderUoWFactory(), c.gateway, c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateExpirePendingOrdersCommandHandler() *commands.ExpirePendingOrdersCommandHandler {
	h := commands.NewExpirePendingOrdersCommandHandler(c.orderUoWFactory(), c.lifecycleDeps())
	return &h
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(queries.NewReadUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(queries.NewReadUoWFactory(c.uowFactory))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrUpdateCategory: c.CreateCreateOrUpdateCategoryCommandHandler(),
		DeleteCategory:         c.CreateDeleteCategoryCommandHandler(),
		PlaceOrder:             c.CreatePlaceOrderCommandHandler(),
		UpdateOrderDetails:     c.CreateUpdateOrderDetailsCommandHandler(),
		RecordPayment:          c.CreateRecordPaymentCommandHandler(),
		StartProcessing:        c.CreateStartProcessingCommandHandler(),
		ShipOrder:              c.CreateShipOrderCommandHandler(),
		CancelOrder:            c.CreateCancelOrderCommandHandler(),
		RefundOrder:            c.CreateRefundOrderCommandHandler(),
		SettleDelayedPayment:   c.CreateSettleDelayedPaymentCommandHandler(),
		ListCategories:         c.CreateListCategoriesQueryHandler(),
		ListOrders:             c.CreateListOrdersQueryHandler(),
		GetOrderDetails:        c.CreateGetOrderDetailsQueryHandler(),
	}, c.componentLogger("http"))
}

// CreateJobManager returns the background jobs, not yet started.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	expiry := jobs.NewPendingOrderExpiryJob(
		c.CreateExpirePendingOrdersCommandHandler(),
		c.config.PendingOrderTTL,
		c.config.ExpiryBatchSize,
		c.config.ExpirySchedule,
		c.componentLogger("jobs"),
	)
	return jobs.NewJobManager(expiry)
}

// Close releases adapters that hold connections. The database is closed by main.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
