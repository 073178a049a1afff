// Package queue defines the route event payloads exchanged over the
// message broker, the publisher that emits them and the background
// consumer that records them.
package queue

const routeQueueName = "route.events"

// Event kinds carried in RouteEvent.Kind.
const (
	KindRouteCreated       = "route.created"
	KindRouteStatusChanged = "route.status_changed"
)

// RouteEvent is published when a route is created or changes state.  It
// carries enough information for downstream consumers to log or trigger
// notifications without querying the route store.
type RouteEvent struct {
	Kind       string `json:"kind"`
	RouteID    uint64 `json:"route_id"`
	OwnerID    uint64 `json:"owner_id"`
	RouteName  string `json:"route_name"`
	State      string `json:"state"`
	StartName  string `json:"start_name,omitempty"`
	EndName    string `json:"end_name,omitempty"`
	Stops      int    `json:"stops"`
	OccurredAt string `json:"occurred_at"`
}
