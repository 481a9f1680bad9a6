package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/dailypick/internal/calendar"
	"github.com/mmynk/dailypick/internal/metrics"
	"github.com/mmynk/dailypick/internal/models"
	"github.com/mmynk/dailypick/internal/picker"
)

// ErrThroughAfterToday is returned when statistics are requested past today.
var ErrThroughAfterToday = errors.New("through date is after today")

// SelectionService serves daily selections and recomputed statistics.
type SelectionService struct {
	registry *Registry
	loc      *time.Location
	now      func() time.Time
	metrics  *metrics.Metrics
}

// Option configures a SelectionService.
type Option func(*SelectionService)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *SelectionService) { s.now = now }
}

// WithMetrics records selections and aggregations in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *SelectionService) { s.metrics = m }
}

// NewSelectionService creates a SelectionService. loc is the civil timezone
// that decides which calendar day "today" is; nil means UTC.
func NewSelectionService(registry *Registry, loc *time.Location, opts ...Option) *SelectionService {
	if loc == nil {
		loc = time.UTC
	}
	s := &SelectionService{registry: registry, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current civil date in the service's timezone.
func (s *SelectionService) Today() calendar.Date {
	return calendar.Today(s.now(), s.loc)
}

// resolveDate parses value, or returns today when it is empty.
func (s *SelectionService) resolveDate(value string) (calendar.Date, error) {
	if value == "" {
		return s.Today(), nil
	}
	return calendar.Parse(value)
}

// Day computes the selection for rosterName on date (default today).
func (s *SelectionService) Day(rosterName, date string) (*models.DayPicks, error) {
	roster, sel, err := s.registry.Lookup(rosterName)
	if err != nil {
		return nil, err
	}
	d, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	picks := sel.Day(d)
	s.metrics.ObserveSelection(roster.Name)

	return &models.DayPicks{Roster: roster.Name, Date: d.String(), Picks: picks}, nil
}

// Stats replays rosterName from its start date through through (default
// today) and returns the ranked counts together with that day's selection.
// through may not be later than today.
func (s *SelectionService) Stats(rosterName, through string) (*models.Stats, error) {
	roster, sel, err := s.registry.Lookup(rosterName)
	if err != nil {
		return nil, err
	}
	end, err := s.resolveDate(through)
	if err != nil {
		return nil, err
	}
	if today := s.Today(); end.After(today) {
		return nil, fmt.Errorf("%w: %s > %s", ErrThroughAfterToday, end, today)
	}

	start := time.Now()
	tally, err := sel.Aggregate(end)
	if err != nil {
		return nil, err
	}
	took := time.Since(start)
	s.metrics.ObserveAggregation(roster.Name, tally.Days, took)

	slog.Debug("Aggregation computed",
		"roster", roster.Name,
		"start", tally.Start.String(),
		"through", tally.End.String(),
		"days", tally.Days,
		"duration_ms", took.Milliseconds(),
	)

	return &models.Stats{
		Roster:    roster.Name,
		StartDate: tally.Start.String(),
		Through:   tally.End.String(),
		Days:      tally.Days,
		Today:     tally.Today,
		Counts:    tally.Counts,
	}, nil
}

// GetDay handles dailypick.v1.SelectionService/GetDay.
func (s *SelectionService) GetDay(ctx context.Context, req *connect.Request[GetDayRequest]) (*connect.Response[GetDayResponse], error) {
	slog.Info("GetDay request received", "roster", req.Msg.Roster, "date", req.Msg.Date)

	day, err := s.Day(req.Msg.Roster, req.Msg.Date)
	if err != nil {
		slog.Error("GetDay failed", "roster", req.Msg.Roster, "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetDay successful", "roster", day.Roster, "date", day.Date, "picks", day.Picks)

	return connect.NewResponse(&GetDayResponse{Day: day}), nil
}

// GetStats handles dailypick.v1.SelectionService/GetStats.
func (s *SelectionService) GetStats(ctx context.Context, req *connect.Request[GetStatsRequest]) (*connect.Response[GetStatsResponse], error) {
	slog.Info("GetStats request received", "roster", req.Msg.Roster, "through", req.Msg.Through)

	stats, err := s.Stats(req.Msg.Roster, req.Msg.Through)
	if err != nil {
		slog.Error("GetStats failed", "roster", req.Msg.Roster, "through", req.Msg.Through, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetStats successful",
		"roster", stats.Roster,
		"through", stats.Through,
		"days", stats.Days,
		"today", stats.Today,
	)

	return connect.NewResponse(&GetStatsResponse{Stats: stats}), nil
}

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, picker.ErrRangeInverted),
		errors.Is(err, ErrThroughAfterToday):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ErrUnknownRoster):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
