package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rutvikrj26/cpd-events-cli/internal/api"
	"github.com/Rutvikrj26/cpd-events-cli/internal/dates"
	"github.com/Rutvikrj26/cpd-events-cli/internal/forms"
	"github.com/Rutvikrj26/cpd-events-cli/internal/platform"
	"github.com/Rutvikrj26/cpd-events-cli/internal/sanitize"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and manage events",
}

var (
	eventsListSearch   string
	eventsListOrg      string
	eventsListStatus   string
	eventsListUpcoming bool
	eventsListPast     bool
	eventsListAll      bool

	eventsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List events",
		RunE:  runEventsList,
	}
)

var eventsShowCmd = &cobra.Command{
	Use:   "show <event-uuid>",
	Short: "Show one event in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsShow,
}

var (
	eventCreateTitle       string
	eventCreateType        string
	eventCreateStart       string
	eventCreateEnd         string
	eventCreateVenue       string
	eventCreateAddress     string
	eventCreateCity        string
	eventCreateMeetingURL  string
	eventCreateCapacity    int
	eventCreatePoints      float64
	eventCreateOrg         string
	eventCreateDescription string

	eventsCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a draft event",
		Long: `Creates a draft event. Dates accept RFC 3339 or natural language
("next friday 9am", "2026-09-12 14:00"). Publish with 'cpd events publish'.`,
		RunE: runEventsCreate,
	}
)

var eventsPublishCmd = &cobra.Command{
	Use:   "publish <event-uuid>",
	Short: "Publish a draft event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsPublish,
}

var eventsCancelCmd = &cobra.Command{
	Use:   "cancel <event-uuid>",
	Short: "Cancel an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsCancel,
}

var eventsRegisterCmd = &cobra.Command{
	Use:   "register <event-uuid>",
	Short: "Register yourself for an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsRegister,
}

var eventsRegistrationsCmd = &cobra.Command{
	Use:   "registrations <event-uuid>",
	Short: "List an event's registrations",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsRegistrations,
}

var (
	eventsCheckinAbsent bool

	eventsCheckinCmd = &cobra.Command{
		Use:   "checkin <event-uuid> <registration-uuid>",
		Short: "Mark a registrant as attended (or absent with --absent)",
		Args:  cobra.ExactArgs(2),
		RunE:  runEventsCheckin,
	}
)

func init() {
	eventsListCmd.Flags().StringVar(&eventsListSearch, "search", "", "search term")
	eventsListCmd.Flags().StringVar(&eventsListOrg, "org", "", "filter by organization UUID")
	eventsListCmd.Flags().StringVar(&eventsListStatus, "status", "", "filter by status (draft, published, cancelled, completed)")
	eventsListCmd.Flags().BoolVar(&eventsListUpcoming, "upcoming", false, "only upcoming events")
	eventsListCmd.Flags().BoolVar(&eventsListPast, "past", false, "only past events")
	eventsListCmd.Flags().BoolVar(&eventsListAll, "all", false, "fetch every page, not just the first")

	eventsCreateCmd.Flags().StringVar(&eventCreateTitle, "title", "", "event title (required)")
	eventsCreateCmd.Flags().StringVar(&eventCreateType, "type", "in_person", "event type (in_person, virtual, hybrid)")
	eventsCreateCmd.Flags().StringVar(&eventCreateStart, "start", "", "start time (required)")
	eventsCreateCmd.Flags().StringVar(&eventCreateEnd, "end", "", "end time (required)")
	eventsCreateCmd.Flags().StringVar(&eventCreateVenue, "venue", "", "venue name")
	eventsCreateCmd.Flags().StringVar(&eventCreateAddress, "address", "", "venue address")
	eventsCreateCmd.Flags().StringVar(&eventCreateCity, "city", "", "city")
	eventsCreateCmd.Flags().StringVar(&eventCreateMeetingURL, "meeting-url", "", "meeting URL for virtual/hybrid events")
	eventsCreateCmd.Flags().IntVar(&eventCreateCapacity, "capacity", 0, "attendee capacity (0 = unlimited)")
	eventsCreateCmd.Flags().Float64Var(&eventCreatePoints, "points", 0, "CPD points awarded for attendance")
	eventsCreateCmd.Flags().StringVar(&eventCreateOrg, "org", "", "owning organization UUID")
	eventsCreateCmd.Flags().StringVar(&eventCreateDescription, "description", "", "event description")

	eventsCheckinCmd.Flags().BoolVar(&eventsCheckinAbsent, "absent", false, "mark as absent instead of attended")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsShowCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsPublishCmd)
	eventsCmd.AddCommand(eventsCancelCmd)
	eventsCmd.AddCommand(eventsRegisterCmd)
	eventsCmd.AddCommand(eventsRegistrationsCmd)
	eventsCmd.AddCommand(eventsCheckinCmd)
}

func parseEventID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid event UUID %q", arg)
	}
	return id, nil
}

func runEventsList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	opts := api.EventListOptions{
		Search:       eventsListSearch,
		Organization: eventsListOrg,
		Status:       eventsListStatus,
		Upcoming:     eventsListUpcoming,
		Past:         eventsListPast,
	}
	page, err := app.client.ListEvents(cmd.Context(), opts)
	if err != nil {
		return err
	}

	events := page.Results
	if eventsListAll && page.HasMore() {
		events, err = api.All(cmd.Context(), app.client, page)
		if err != nil {
			return err
		}
	}

	if len(events) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No events found.")
		return nil
	}

	rows := make([][]string, 0, len(events))
	for _, event := range events {
		rows = append(rows, []string{
			event.ID.String(),
			formatTime(event.StartTime),
			event.Status,
			truncate(sanitize.Text(event.Title), 44),
			formatPoints(event.CPDPoints),
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "STARTS", "STATUS", "TITLE", "CPD"}, rows)

	if !eventsListAll && page.HasMore() {
		fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d. Use --all for the rest.\n", len(events), page.Count)
	}
	return nil
}

func runEventsShow(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	event, err := app.client.Event(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", sanitize.Text(event.Title))
	fmt.Fprintf(out, "Status:   %s (%s)\n", event.Status, event.EventType)
	fmt.Fprintf(out, "When:     %s to %s\n", formatTime(event.StartTime), formatTime(event.EndTime))
	if event.VenueName != "" {
		fmt.Fprintf(out, "Where:    %s, %s\n", event.VenueName, event.City)
	}
	if event.MeetingURL != "" {
		fmt.Fprintf(out, "Join:     %s\n", event.MeetingURL)
	}
	if event.Capacity > 0 {
		fmt.Fprintf(out, "Capacity: %d/%d registered\n", event.RegisteredCount, event.Capacity)
	} else {
		fmt.Fprintf(out, "Registered: %d\n", event.RegisteredCount)
	}
	fmt.Fprintf(out, "CPD:      %s points\n", formatPoints(event.CPDPoints))
	if event.Organization != nil {
		fmt.Fprintf(out, "Org:      %s\n", event.Organization.Name)
	}
	if event.Description != "" {
		fmt.Fprintf(out, "\n%s\n", sanitize.Description(event.Description))
	}
	return nil
}

func runEventsCreate(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	now := time.Now()
	var start, end time.Time
	if eventCreateStart != "" {
		if start, err = dates.Parse(eventCreateStart, now); err != nil {
			return err
		}
	}
	if eventCreateEnd != "" {
		if end, err = dates.Parse(eventCreateEnd, now); err != nil {
			return err
		}
	}

	create := platform.EventCreate{
		Title:        eventCreateTitle,
		Description:  eventCreateDescription,
		EventType:    eventCreateType,
		StartTime:    start,
		EndTime:      end,
		VenueName:    eventCreateVenue,
		VenueAddress: eventCreateAddress,
		City:         eventCreateCity,
		MeetingURL:   eventCreateMeetingURL,
		Capacity:     eventCreateCapacity,
		CPDPoints:    eventCreatePoints,
		Organization: eventCreateOrg,
	}
	if err := forms.Validate(create); err != nil {
		return err
	}

	event, err := app.client.CreateEvent(cmd.Context(), create)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created draft event %s (%s)\n", event.ID, sanitize.Text(event.Title))
	return nil
}

func runEventsPublish(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	event, err := app.client.PublishEvent(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Published %s (%s)\n", event.ID, sanitize.Text(event.Title))
	return nil
}

func runEventsCancel(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	event, err := app.client.CancelEvent(cmd.Context(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cancelled %s. Registered attendees will be notified.\n", event.ID)
	return nil
}

func runEventsRegister(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	reg, err := app.client.Register(cmd.Context(), id)
	if err != nil {
		return err
	}
	switch reg.Status {
	case platform.RegistrationStatusWaitlisted:
		fmt.Fprintln(cmd.OutOrStdout(), "Event is full; you are on the waitlist.")
	default:
		fmt.Fprintln(cmd.OutOrStdout(), "Registered.")
	}
	return nil
}

func runEventsRegistrations(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	id, err := parseEventID(args[0])
	if err != nil {
		return err
	}

	page, err := app.client.Registrations(cmd.Context(), id)
	if err != nil {
		return err
	}
	regs, err := api.All(cmd.Context(), app.client, page)
	if err != nil {
		return err
	}

	if len(regs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No registrations.")
		return nil
	}

	rows := make([][]string, 0, len(regs))
	for _, reg := range regs {
		attended := "-"
		if reg.Attended {
			attended = "yes"
		}
		rows = append(rows, []string{
			reg.ID.String(),
			reg.Attendee.FullName(),
			reg.Status,
			attended,
		})
	}
	table(cmd.OutOrStdout(), []string{"UUID", "ATTENDEE", "STATUS", "ATTENDED"}, rows)
	return nil
}

func runEventsCheckin(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	eventID, err := parseEventID(args[0])
	if err != nil {
		return err
	}
	regID, err := uuid.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid registration UUID %q", args[1])
	}

	mark := platform.AttendanceMark{Registration: regID, Attended: !eventsCheckinAbsent}
	reg, err := app.client.MarkAttendance(cmd.Context(), eventID, mark)
	if err != nil {
		return err
	}
	if reg.Attended {
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as attended.\n", reg.Attendee.FullName())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as absent.\n", reg.Attendee.FullName())
	}
	return nil
}
