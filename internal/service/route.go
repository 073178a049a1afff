package service

import (
	"github.com/iliyamo/travel-route-planner/internal/model"
	"github.com/iliyamo/travel-route-planner/internal/repository"
)

// RouteService manages each user's routes.  Every operation that takes a
// token resolves it through the auth service first and propagates the
// auth error unchanged; the store itself never sees a raw token.
type RouteService struct {
	auth   *AuthService
	routes *repository.RouteRepo
}

// NewRouteService wires the service to the auth boundary and route store.
func NewRouteService(auth *AuthService, routes *repository.RouteRepo) *RouteService {
	return &RouteService{auth: auth, routes: routes}
}

// PrepareRoute allocates the next global route id and returns an empty
// route seeded with it.  Nothing is stored until AddRoute is called.
func (s *RouteService) PrepareRoute() *model.Route {
	return model.NewRoute(s.routes.NextID())
}

// NewRouteBuilder allocates the next global route id and returns a
// builder seeded with it.  Construction only, no storage side effect.
func (s *RouteService) NewRouteBuilder() *model.RouteBuilder {
	return model.NewRouteBuilder(s.routes.NextID())
}

// AddRoute stamps the route with the token's user as owner and appends it
// to that user's list.  The owner never changes afterwards.
func (s *RouteService) AddRoute(token string, route *model.Route) error {
	u, err := s.auth.GetUser(token)
	if err != nil {
		return err
	}
	route.OwnerID = u.ID
	s.routes.Append(u.ID, route)
	return nil
}

// GetRoutes returns the token's user's routes in insertion order.  A
// non-nil endFilter keeps only routes whose path ends at that location
// id, a non-nil startFilter only those starting there; both combine as
// an AND.  A route with no start or end set never matches a filter.
func (s *RouteService) GetRoutes(token string, endFilter, startFilter *uint64) ([]*model.Route, error) {
	u, err := s.auth.GetUser(token)
	if err != nil {
		return nil, err
	}
	list := s.routes.ListByOwner(u.ID)
	if endFilter == nil && startFilter == nil {
		return list, nil
	}
	out := make([]*model.Route, 0, len(list))
	for _, rt := range list {
		if endFilter != nil && (rt.Path.End == nil || rt.Path.End.ID != *endFilter) {
			continue
		}
		if startFilter != nil && (rt.Path.Start == nil || rt.Path.Start.ID != *startFilter) {
			continue
		}
		out = append(out, rt)
	}
	return out, nil
}

// UpdateRouteStatus overwrites the state of the user's own route.  The
// lookup is confined to the token's user, so one user cannot transition
// another user's route.  The store leaves an unknown id untouched.
func (s *RouteService) UpdateRouteStatus(token string, routeID uint64, state model.RouteState) error {
	u, err := s.auth.GetUser(token)
	if err != nil {
		return err
	}
	return s.routes.UpdateStatus(u.ID, routeID, state)
}

// DeleteRoute removes exactly one route by id from the user's own list.
func (s *RouteService) DeleteRoute(token string, routeID uint64) error {
	u, err := s.auth.GetUser(token)
	if err != nil {
		return err
	}
	return s.routes.Remove(u.ID, routeID)
}
