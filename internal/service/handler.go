package service

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// SelectionServiceName is the fully-qualified name of the SelectionService.
	SelectionServiceName = "dailypick.v1.SelectionService"
	// RosterServiceName is the fully-qualified name of the RosterService.
	RosterServiceName = "dailypick.v1.RosterService"

	SelectionServiceGetDayProcedure   = "/" + SelectionServiceName + "/GetDay"
	SelectionServiceGetStatsProcedure = "/" + SelectionServiceName + "/GetStats"
	RosterServiceListRostersProcedure = "/" + RosterServiceName + "/ListRosters"
	RosterServiceGetRosterProcedure   = "/" + RosterServiceName + "/GetRoster"
)

// procedureMux routes a service's procedures to their Connect handlers.
type procedureMux map[string]http.Handler

func (m procedureMux) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := m[r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// NewSelectionServiceHandler builds an HTTP handler for svc and returns the
// path prefix to mount it on.
func NewSelectionServiceHandler(svc *SelectionService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + SelectionServiceName + "/", procedureMux{
		SelectionServiceGetDayProcedure:   connect.NewUnaryHandler(SelectionServiceGetDayProcedure, svc.GetDay, opts...),
		SelectionServiceGetStatsProcedure: connect.NewUnaryHandler(SelectionServiceGetStatsProcedure, svc.GetStats, opts...),
	}
}

// NewRosterServiceHandler builds an HTTP handler for svc and returns the path
// prefix to mount it on.
func NewRosterServiceHandler(svc *RosterService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + RosterServiceName + "/", procedureMux{
		RosterServiceListRostersProcedure: connect.NewUnaryHandler(RosterServiceListRostersProcedure, svc.ListRosters, opts...),
		RosterServiceGetRosterProcedure:   connect.NewUnaryHandler(RosterServiceGetRosterProcedure, svc.GetRoster, opts...),
	}
}

// SelectionServiceClient calls a remote SelectionService.
type SelectionServiceClient struct {
	getDay   *connect.Client[GetDayRequest, GetDayResponse]
	getStats *connect.Client[GetStatsRequest, GetStatsResponse]
}

// NewSelectionServiceClient creates a client for the server at baseURL.
func NewSelectionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SelectionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &SelectionServiceClient{
		getDay:   connect.NewClient[GetDayRequest, GetDayResponse](httpClient, baseURL+SelectionServiceGetDayProcedure, opts...),
		getStats: connect.NewClient[GetStatsRequest, GetStatsResponse](httpClient, baseURL+SelectionServiceGetStatsProcedure, opts...),
	}
}

// GetDay calls dailypick.v1.SelectionService/GetDay.
func (c *SelectionServiceClient) GetDay(ctx context.Context, req *connect.Request[GetDayRequest]) (*connect.Response[GetDayResponse], error) {
	return c.getDay.CallUnary(ctx, req)
}

// GetStats calls dailypick.v1.SelectionService/GetStats.
func (c *SelectionServiceClient) GetStats(ctx context.Context, req *connect.Request[GetStatsRequest]) (*connect.Response[GetStatsResponse], error) {
	return c.getStats.CallUnary(ctx, req)
}

// RosterServiceClient calls a remote RosterService.
type RosterServiceClient struct {
	listRosters *connect.Client[ListRostersRequest, ListRostersResponse]
	getRoster   *connect.Client[GetRosterRequest, GetRosterResponse]
}

// NewRosterServiceClient creates a client for the server at baseURL.
func NewRosterServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RosterServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &RosterServiceClient{
		listRosters: connect.NewClient[ListRostersRequest, ListRostersResponse](httpClient, baseURL+RosterServiceListRostersProcedure, opts...),
		getRoster:   connect.NewClient[GetRosterRequest, GetRosterResponse](httpClient, baseURL+RosterServiceGetRosterProcedure, opts...),
	}
}

// ListRosters calls dailypick.v1.RosterService/ListRosters.
func (c *RosterServiceClient) ListRosters(ctx context.Context, req *connect.Request[ListRostersRequest]) (*connect.Response[ListRostersResponse], error) {
	return c.listRosters.CallUnary(ctx, req)
}

// GetRoster calls dailypick.v1.RosterService/GetRoster.
func (c *RosterServiceClient) GetRoster(ctx context.Context, req *connect.Request[GetRosterRequest]) (*connect.Response[GetRosterResponse], error) {
	return c.getRoster.CallUnary(ctx, req)
}
