package repository

import (
	"sync"

	"github.com/iliyamo/travel-route-planner/internal/model"
)

// RouteRepo stores each user's routes under the owning user id, plus a
// route-id counter shared across all users.  Route ids are therefore
// globally unique and strictly increasing for the lifetime of the store,
// even interleaved across different owners.  Besides the map partition,
// every stored route carries its owner id explicitly; mutating operations
// re-check it so a route can never be touched through the wrong owner.
type RouteRepo struct {
	mu     sync.RWMutex
	routes map[uint64][]*model.Route
	nextID uint64
}

func NewRouteRepo() *RouteRepo {
	return &RouteRepo{routes: make(map[uint64][]*model.Route), nextID: 1}
}

// NextID hands out the next route id and advances the shared counter.
// Ids are never reused, even after deletion.
func (r *RouteRepo) NextID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id
}

// Append adds the route to the owner's list, creating the list if absent.
// The route must already be stamped with the owner id.
func (r *RouteRepo) Append(ownerID uint64, route *model.Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes[ownerID] = append(r.routes[ownerID], route)
}

// ListByOwner returns the owner's routes in insertion order.  The slice
// is a copy; the routes themselves are shared.
func (r *RouteRepo) ListByOwner(ownerID uint64) []*model.Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.routes[ownerID]
	out := make([]*model.Route, len(list))
	copy(out, list)
	return out
}

// UpdateStatus overwrites the state of the owner's route.  Any state is
// reachable from any state; terminality is not enforced.  Returns
// ErrNoRoutes when the owner has no list and ErrRouteNotFound when the id
// is absent from it.
func (r *RouteRepo) UpdateStatus(ownerID, routeID uint64, state model.RouteState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.routes[ownerID]
	if !ok || len(list) == 0 {
		return ErrNoRoutes
	}
	for _, rt := range list {
		if rt.ID == routeID && rt.OwnerID == ownerID {
			rt.SetStatus(state)
			return nil
		}
	}
	return ErrRouteNotFound
}

// Remove deletes exactly one route by id from the owner's list.  Returns
// ErrNoUserRoutes when the owner has no list and ErrRouteDoesntExist when
// the id is not present, so a second delete of the same id fails.
func (r *RouteRepo) Remove(ownerID, routeID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, ok := r.routes[ownerID]
	if !ok || len(list) == 0 {
		return ErrNoUserRoutes
	}
	for i, rt := range list {
		if rt.ID == routeID && rt.OwnerID == ownerID {
			r.routes[ownerID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrRouteDoesntExist
}
