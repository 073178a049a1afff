package model

import "time"

// RouteState is the lifecycle state of a route.  The intended flow is
// Created → Active ⇄ Paused → Finished, with Canceled reachable from any
// non-terminal state.  Finished and Canceled are terminal by convention
// only; the store does not enforce terminality.
type RouteState string

const (
	RouteCreated  RouteState = "Created"
	RouteActive   RouteState = "Active"
	RoutePaused   RouteState = "Paused"
	RouteFinished RouteState = "Finished"
	RouteCanceled RouteState = "Canceled"
)

// ValidRouteState reports whether s is one of the known lifecycle states.
func ValidRouteState(s RouteState) bool {
	switch s {
	case RouteCreated, RouteActive, RoutePaused, RouteFinished, RouteCanceled:
		return true
	}
	return false
}

// Path holds the start and end of a route plus the ordered stops between
// them.  Start and End are nil until set.
type Path struct {
	Start *Location  `json:"start"`
	End   *Location  `json:"end"`
	Stops []Location `json:"stops"`
}

// SetStart records the starting location of the path.
func (p *Path) SetStart(l Location) { p.Start = &l }

// SetEnd records the final location of the path.
func (p *Path) SetEnd(l Location) { p.End = &l }

// AddStop appends an intermediate stop, preserving insertion order.
func (p *Path) AddStop(l Location) { p.Stops = append(p.Stops, l) }

// Route is a planned itinerary owned by exactly one user.  Ids come from
// a counter shared across all users, are strictly increasing and never
// reused.  OwnerID is stamped when the route is stored and never changes
// afterwards.
//
// Fields:
//  ID          – globally unique route identifier.
//  OwnerID     – id of the owning user; set at creation, immutable.
//  Name        – display name of the route.
//  State       – current lifecycle state.
//  Path        – start, end and ordered stops.
//  Date        – creation time.
//  Housings    – housing options attached to the route.
//  Restaurants – restaurant options attached to the route.
type Route struct {
	ID          uint64       `json:"id"`
	OwnerID     uint64       `json:"owner_id"`
	Name        string       `json:"name"`
	State       RouteState   `json:"state"`
	Path        Path         `json:"path"`
	Date        time.Time    `json:"date"`
	Housings    []Housing    `json:"housings"`
	Restaurants []Restaurant `json:"restaurants"`
}

// NewRoute returns an empty route seeded with the given id: no name, a
// blank path and the Created state.
func NewRoute(id uint64) *Route {
	return &Route{
		ID:          id,
		State:       RouteCreated,
		Date:        time.Now().UTC(),
		Housings:    []Housing{},
		Restaurants: []Restaurant{},
	}
}

// SetStatus overwrites the lifecycle state unconditionally.
func (r *Route) SetStatus(s RouteState) { r.State = s }

// SetStart sets the path's starting location.
func (r *Route) SetStart(l Location) { r.Path.SetStart(l) }

// SetEnd sets the path's final location.
func (r *Route) SetEnd(l Location) { r.Path.SetEnd(l) }

// AddStop appends a stop to the path.
func (r *Route) AddStop(l Location) { r.Path.AddStop(l) }

// AddHousing attaches a housing option to the route.
func (r *Route) AddHousing(h Housing) { r.Housings = append(r.Housings, h) }

// RemoveHousing detaches a housing option by id.
func (r *Route) RemoveHousing(id uint64) {
	out := r.Housings[:0]
	for _, h := range r.Housings {
		if h.ID != id {
			out = append(out, h)
		}
	}
	r.Housings = out
}

// AddRestaurant attaches a restaurant option to the route.
func (r *Route) AddRestaurant(rest Restaurant) { r.Restaurants = append(r.Restaurants, rest) }

// RemoveRestaurant detaches a restaurant option by id.
func (r *Route) RemoveRestaurant(id uint64) {
	out := r.Restaurants[:0]
	for _, rest := range r.Restaurants {
		if rest.ID != id {
			out = append(out, rest)
		}
	}
	r.Restaurants = out
}

// RouteBuilder assembles a route fluently.  It is purely construction:
// nothing is stored until the built route is handed to the route service.
type RouteBuilder struct {
	route *Route
}

// NewRouteBuilder wraps an empty route seeded with the given id.
func NewRouteBuilder(id uint64) *RouteBuilder {
	return &RouteBuilder{route: NewRoute(id)}
}

// SetName sets the display name.
func (b *RouteBuilder) SetName(name string) *RouteBuilder {
	b.route.Name = name
	return b
}

// SetStart sets the starting location.
func (b *RouteBuilder) SetStart(l Location) *RouteBuilder {
	b.route.SetStart(l)
	return b
}

// SetEnd sets the final location.
func (b *RouteBuilder) SetEnd(l Location) *RouteBuilder {
	b.route.SetEnd(l)
	return b
}

// AddStop appends an intermediate stop.
func (b *RouteBuilder) AddStop(l Location) *RouteBuilder {
	b.route.AddStop(l)
	return b
}

// AddHousing attaches a housing option.
func (b *RouteBuilder) AddHousing(h Housing) *RouteBuilder {
	b.route.AddHousing(h)
	return b
}

// AddRestaurant attaches a restaurant option.
func (b *RouteBuilder) AddRestaurant(r Restaurant) *RouteBuilder {
	b.route.AddRestaurant(r)
	return b
}

// Build returns the assembled route.
func (b *RouteBuilder) Build() *Route { return b.route }
