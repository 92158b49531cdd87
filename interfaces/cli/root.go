package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eventdeck/application/commands"
	"eventdeck/application/queries"
	"eventdeck/domain/core/validators"
	"eventdeck/infrastructure/cache"
	"eventdeck/infrastructure/remote"
	"eventdeck/pkg/observability"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Store   string
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the eventctl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "eventctl",
		Short: "eventctl - inspect and mutate the event store",
		Long:  "A command-line client for the event store, sharing the gateway's validation, caching and mutation pipeline.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Store, "store", "http://localhost:3000", "base URL of the event store")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewEventsCommand(opts))
	cmd.AddCommand(NewCategoriesCommand(opts))
	cmd.AddCommand(NewUsersCommand(opts))

	return cmd
}

// app bundles the wired handlers a subcommand needs.
type app struct {
	listEvents     *queries.ListEventsHandler
	getEvent       *queries.GetEventHandler
	listCategories *queries.ListCategoriesHandler
	listUsers      *queries.ListUsersHandler
	createEvent    *commands.CreateEventHandler
	updateEvent    *commands.UpdateEventHandler
	deleteEvent    *commands.DeleteEventHandler
}

// newApp wires the store client, cache and handlers for a single
// invocation. The cache never expires here; one CLI run is one snapshot.
func newApp(opts *RootOptions) (*app, error) {
	logger := zap.NewNop()
	if opts.Verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}

	metrics := observability.NewMetrics("eventctl")
	client := remote.NewClient(opts.Store, logger, metrics)
	store := remote.NewBreakerStore(client, logger)
	entityCache := cache.NewEntityCache(store, 0, logger, metrics)
	users := commands.NewUserResolver(store, entityCache, logger)
	validator := validators.NewEventValidator()

	return &app{
		listEvents:     queries.NewListEventsHandler(entityCache, logger),
		getEvent:       queries.NewGetEventHandler(store, entityCache, logger),
		listCategories: queries.NewListCategoriesHandler(entityCache),
		listUsers:      queries.NewListUsersHandler(entityCache),
		createEvent:    commands.NewCreateEventHandler(store, entityCache, users, validator, logger, metrics),
		updateEvent:    commands.NewUpdateEventHandler(store, entityCache, users, validator, logger, metrics),
		deleteEvent:    commands.NewDeleteEventHandler(store, entityCache, logger, metrics),
	}, nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
