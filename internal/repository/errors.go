// Package repository holds the in-memory stores backing the services.
// This file defines the sentinel errors shared across repositories.  The
// error text doubles as the message surfaced to clients, so the exact
// wording matters: handlers put it into the error envelope verbatim.
package repository

import "errors"

// ErrUserNotFound is returned by directory lookups that match no user.
var ErrUserNotFound = errors.New("User not found")

// ErrInvalidToken is returned when a token is not bound in the session
// table, either because it was never issued or because it was logged out.
var ErrInvalidToken = errors.New("Invalid token")

// ErrNoRoutes is returned by a status update when the resolved user has
// no route list at all.
var ErrNoRoutes = errors.New("No routes found")

// ErrRouteNotFound is returned by a status update when the user has
// routes but none with the requested id.
var ErrRouteNotFound = errors.New("Route not found")

// ErrNoUserRoutes is returned by a delete when the resolved user has no
// route list at all.
var ErrNoUserRoutes = errors.New("User doesnt have routes")

// ErrRouteDoesntExist is returned by a delete when the route id is not in
// the user's list.  A second delete of the same id fails with this.
var ErrRouteDoesntExist = errors.New("Route doesnt exist")
