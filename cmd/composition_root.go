package cmd

import (
	"fmt"
	"log/slog"
	"net/http"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/sqlite"
	"storefront/internal/adapters/templates"
	"storefront/internal/core/application/auth"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/notification"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
	"storefront/internal/dispatcher"
	"storefront/internal/jobs"
	"storefront/internal/telemetry"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config   Config
	store    *sqlite.Store
	metrics  *telemetry.Metrics
	mailer   *dispatcher.Dispatcher
	renderer *templates.Renderer
	gate     *auth.AdminGate
	logger   *slog.Logger
}

func NewCompositionRoot(
	config Config,
	store *sqlite.Store,
	sender ports.MailSender,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	gate, err := auth.NewAdminGate(config.AdminPassDigest)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_PASS: %w", err)
	}

	return &CompositionRoot{
		config:   config,
		store:    store,
		metrics:  metrics,
		mailer:   dispatcher.NewDispatcher(sender, config.NotificationQueueSize, metrics, logger),
		renderer: renderer,
		gate:     gate,
		logger:   logger,
	}, nil
}

// Dispatcher is the single notification queue shared by every checkout.
func (c *CompositionRoot) Dispatcher() *dispatcher.Dispatcher {
	return c.mailer
}

func (c *CompositionRoot) uowFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.store.Create()
	})
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(
		c.uowFactory(),
		services.NewRandomTrackingCodeGenerator(),
		c.renderer,
		c.mailer,
		c.metrics,
		commands.CheckoutSettings{
			Sender:      notification.Address{Name: c.config.EmailName, Email: c.config.Email},
			SiteURL:     c.config.SiteURL,
			MaxAttempts: c.config.CheckoutMaxAttempts,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.uowFactory(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uowFactory(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.metrics, jobs.Schedules{
		WalCheckpoint: c.config.WalCheckpointSchedule,
		OrderStats:    c.config.OrderStatsSchedule,
	}, c.logger)
}

// CreateRouter wires every handler into the echo instance.
func (c *CompositionRoot) CreateRouter(metricsHandler http.Handler) (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateCheckoutCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateDeleteOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.renderer,
		c.gate,
		c.logger,
	)

	return httpin.NewRouter(server, httpin.RouterOptions{
		StaticDir: c.config.StaticDir,
		Metrics:   metricsHandler,
		Logger:    c.logger,
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
