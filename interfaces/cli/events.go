package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"eventdeck/application/commands"
	"eventdeck/application/queries"
	"eventdeck/pkg/utils"
)

// eventFlags holds the mutation flags shared by create and update.
type eventFlags struct {
	Title       string
	Description string
	Image       string
	Location    string
	Start       string
	End         string
	CreatedBy   string
	Categories  []int
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Title, "title", "", "event title")
	cmd.Flags().StringVar(&f.Description, "description", "", "event description")
	cmd.Flags().StringVar(&f.Image, "image", "", "image URL")
	cmd.Flags().StringVar(&f.Location, "location", "", "event location")
	cmd.Flags().StringVar(&f.Start, "start", "", "start time (RFC 3339)")
	cmd.Flags().StringVar(&f.End, "end", "", "end time (RFC 3339)")
	cmd.Flags().StringVar(&f.CreatedBy, "created-by", "", "creator display name")
	cmd.Flags().IntSliceVar(&f.Categories, "categories", nil, "category ids")
}

// NewEventsCommand creates the events command group.
func NewEventsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List, inspect and mutate events",
	}

	cmd.AddCommand(newEventsListCommand(rootOpts))
	cmd.AddCommand(newEventsGetCommand(rootOpts))
	cmd.AddCommand(newEventsCreateCommand(rootOpts))
	cmd.AddCommand(newEventsUpdateCommand(rootOpts))
	cmd.AddCommand(newEventsDeleteCommand(rootOpts))

	return cmd
}

func newEventsListCommand(rootOpts *RootOptions) *cobra.Command {
	var search string
	var categories []int

	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List events, optionally filtered",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}

			result, err := a.listEvents.Handle(cmd.Context(), queries.ListEventsQuery{
				Search:      search,
				CategoryIDs: categories,
			})
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), result)
			}
			return printEventTable(cmd.OutOrStdout(), result.Events)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "substring match on title and description")
	cmd.Flags().IntSliceVar(&categories, "categories", nil, "restrict to events in any of these category ids")

	return cmd
}

func newEventsGetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "get <event-id>",
		Short:        "Show one event",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}

			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}

			view, err := a.getEvent.Handle(cmd.Context(), queries.GetEventQuery{EventID: eventID})
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), view)
			}
			printEventDetail(cmd.OutOrStdout(), view)
			return nil
		},
	}

	return cmd
}

func newEventsCreateCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &eventFlags{}

	cmd := &cobra.Command{
		Use:          "create",
		Short:        "Create an event",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.createCommand()
			if err != nil {
				return err
			}

			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}

			created, err := a.createEvent.Handle(cmd.Context(), c)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created event %d\n", created.ID)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newEventsUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &eventFlags{}

	cmd := &cobra.Command{
		Use:          "update <event-id>",
		Short:        "Replace an event record",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}

			c, err := flags.createCommand()
			if err != nil {
				return err
			}

			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}

			updated, err := a.updateEvent.Handle(cmd.Context(), commands.UpdateEventCommand{
				EventID:     eventID,
				Title:       c.Title,
				Description: c.Description,
				Image:       c.Image,
				Location:    c.Location,
				StartTime:   c.StartTime,
				EndTime:     c.EndTime,
				CreatedBy:   c.CreatedBy,
				CategoryIDs: c.CategoryIDs,
			})
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				return printJSON(cmd.OutOrStdout(), updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated event %d\n", updated.ID)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newEventsDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var keepCreator bool

	cmd := &cobra.Command{
		Use:          "delete <event-id>",
		Short:        "Delete an event and, by default, its creator's user record",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid event id %q", args[0])
			}

			a, err := newApp(rootOpts)
			if err != nil {
				return err
			}

			// Look up the creator before deleting; a missing event is
			// tolerated downstream.
			creatorID := 0
			if view, err := a.getEvent.Handle(cmd.Context(), queries.GetEventQuery{EventID: eventID}); err == nil {
				creatorID = view.CreatedBy
			}

			err = a.deleteEvent.Handle(cmd.Context(), commands.DeleteEventCommand{
				EventID:       eventID,
				CreatorID:     creatorID,
				DeleteCreator: !keepCreator && creatorID > 0,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted event %d\n", eventID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepCreator, "keep-creator", false, "leave the creator's user record in place")

	return cmd
}

// createCommand converts the flag set into a create command, parsing
// the timestamps.
func (f *eventFlags) createCommand() (commands.CreateEventCommand, error) {
	start, err := utils.ParseRFC3339(f.Start)
	if err != nil {
		return commands.CreateEventCommand{}, fmt.Errorf("invalid --start: %w", err)
	}
	end, err := utils.ParseRFC3339(f.End)
	if err != nil {
		return commands.CreateEventCommand{}, fmt.Errorf("invalid --end: %w", err)
	}

	return commands.CreateEventCommand{
		Title:       f.Title,
		Description: f.Description,
		Image:       f.Image,
		Location:    f.Location,
		StartTime:   start,
		EndTime:     end,
		CreatedBy:   f.CreatedBy,
		CategoryIDs: f.Categories,
	}, nil
}
