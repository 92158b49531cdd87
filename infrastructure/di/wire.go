//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"eventdeck/infrastructure/config"
)

// SuperSet is the complete provider set for the application
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideStoreClient,
	ProvideRemoteStore,
	ProvideEntityCache,
	ProvideCachePort,
	ProvideRefresher,
	ProvideUserResolver,
	ProvideEventValidator,
	ProvideListEventsHandler,
	ProvideGetEventHandler,
	ProvideListCategoriesHandler,
	ProvideListUsersHandler,
	ProvideCreateEventHandler,
	ProvideUpdateEventHandler,
	ProvideDeleteEventHandler,
	ProvideErrorHandler,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired dependency container
func InitializeContainer(cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil
}
