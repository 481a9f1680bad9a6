package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
)

// RosterService exposes the rosters the server was started with. Rosters are
// frozen for the life of the process, so there are no write procedures.
type RosterService struct {
	registry *Registry
}

// NewRosterService creates a new RosterService over registry.
func NewRosterService(registry *Registry) *RosterService {
	return &RosterService{registry: registry}
}

// ListRosters returns every roster in registration order.
func (s *RosterService) ListRosters(ctx context.Context, req *connect.Request[ListRostersRequest]) (*connect.Response[ListRostersResponse], error) {
	slog.Info("ListRosters request received")

	rosters := s.registry.Rosters()

	slog.Info("ListRosters successful", "count", len(rosters))

	return connect.NewResponse(&ListRostersResponse{
		Rosters: rosters,
	}), nil
}

// GetRoster retrieves a roster by name.
func (s *RosterService) GetRoster(ctx context.Context, req *connect.Request[GetRosterRequest]) (*connect.Response[GetRosterResponse], error) {
	slog.Info("GetRoster request received", "name", req.Msg.Name)

	roster, _, err := s.registry.Lookup(req.Msg.Name)
	if err != nil {
		slog.Error("GetRoster failed", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetRoster successful", "name", roster.Name, "members_count", len(roster.Members))

	return connect.NewResponse(&GetRosterResponse{
		Roster: roster,
	}), nil
}
