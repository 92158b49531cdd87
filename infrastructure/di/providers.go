package di

import (
	"go.uber.org/zap"

	"eventdeck/application/commands"
	"eventdeck/application/ports"
	"eventdeck/application/queries"
	"eventdeck/domain/core/validators"
	"eventdeck/infrastructure/cache"
	"eventdeck/infrastructure/config"
	"eventdeck/infrastructure/remote"
	pkgerrors "eventdeck/pkg/errors"
	"eventdeck/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *observability.Metrics

	Store     ports.RemoteStore
	Cache     *cache.EntityCache
	Refresher *cache.Refresher

	ListEvents     *queries.ListEventsHandler
	GetEvent       *queries.GetEventHandler
	ListCategories *queries.ListCategoriesHandler
	ListUsers      *queries.ListUsersHandler

	CreateEvent *commands.CreateEventHandler
	UpdateEvent *commands.UpdateEventHandler
	DeleteEvent *commands.DeleteEventHandler

	ErrorHandler *pkgerrors.ErrorHandler
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the metrics instance
func ProvideMetrics(cfg *config.Config) *observability.Metrics {
	return observability.NewMetrics("eventdeck")
}

// ProvideStoreClient creates the HTTP client for the upstream store
func ProvideStoreClient(cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) *remote.Client {
	return remote.NewClient(cfg.StoreBaseURL, logger, metrics)
}

// ProvideRemoteStore wraps the store client with circuit breaker protection
func ProvideRemoteStore(client *remote.Client, logger *zap.Logger) ports.RemoteStore {
	return remote.NewBreakerStore(client, logger)
}

// ProvideEntityCache creates the per-entity collection cache
func ProvideEntityCache(store ports.RemoteStore, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics) *cache.EntityCache {
	return cache.NewEntityCache(store, cfg.CacheTTL, logger, metrics)
}

// ProvideCachePort exposes the cache through its port
func ProvideCachePort(c *cache.EntityCache) ports.EntityCache {
	return c
}

// ProvideRefresher creates the periodic cache refresher
func ProvideRefresher(c *cache.EntityCache, cfg *config.Config, logger *zap.Logger) *cache.Refresher {
	return cache.NewRefresher(c, cfg.RefreshSchedule, logger)
}

// ProvideUserResolver creates the upsert-by-name resolver
func ProvideUserResolver(store ports.RemoteStore, c ports.EntityCache, logger *zap.Logger) *commands.UserResolver {
	return commands.NewUserResolver(store, c, logger)
}

// ProvideEventValidator creates the mutation validator
func ProvideEventValidator() *validators.EventValidator {
	return validators.NewEventValidator()
}

// ProvideListEventsHandler creates the list-events query handler
func ProvideListEventsHandler(c ports.EntityCache, logger *zap.Logger) *queries.ListEventsHandler {
	return queries.NewListEventsHandler(c, logger)
}

// ProvideGetEventHandler creates the get-event query handler
func ProvideGetEventHandler(store ports.RemoteStore, c ports.EntityCache, logger *zap.Logger) *queries.GetEventHandler {
	return queries.NewGetEventHandler(store, c, logger)
}

// ProvideListCategoriesHandler creates the list-categories query handler
func ProvideListCategoriesHandler(c ports.EntityCache) *queries.ListCategoriesHandler {
	return queries.NewListCategoriesHandler(c)
}

// ProvideListUsersHandler creates the list-users query handler
func ProvideListUsersHandler(c ports.EntityCache) *queries.ListUsersHandler {
	return queries.NewListUsersHandler(c)
}

// ProvideCreateEventHandler creates the create-event coordinator
func ProvideCreateEventHandler(
	store ports.RemoteStore,
	c ports.EntityCache,
	users *commands.UserResolver,
	validator *validators.EventValidator,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *commands.CreateEventHandler {
	return commands.NewCreateEventHandler(store, c, users, validator, logger, metrics)
}

// ProvideUpdateEventHandler creates the update-event coordinator
func ProvideUpdateEventHandler(
	store ports.RemoteStore,
	c ports.EntityCache,
	users *commands.UserResolver,
	validator *validators.EventValidator,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *commands.UpdateEventHandler {
	return commands.NewUpdateEventHandler(store, c, users, validator, logger, metrics)
}

// ProvideDeleteEventHandler creates the delete-event coordinator
func ProvideDeleteEventHandler(
	store ports.RemoteStore,
	c ports.EntityCache,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *commands.DeleteEventHandler {
	return commands.NewDeleteEventHandler(store, c, logger, metrics)
}

// ProvideErrorHandler creates the HTTP error translator
func ProvideErrorHandler(logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger)
}
