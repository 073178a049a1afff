package repository

import (
	"sync"

	"github.com/iliyamo/travel-route-planner/internal/model"
)

// CatalogRepo holds the reference entities routes are assembled from:
// locations, housings and restaurants.  The catalog is seeded once at
// startup and treated as immutable afterwards; routes reference entries
// by id when they are built.
type CatalogRepo struct {
	mu          sync.RWMutex
	locations   []model.Location
	housings    []model.Housing
	restaurants []model.Restaurant
}

func NewCatalogRepo() *CatalogRepo { return &CatalogRepo{} }

// AddLocation appends a location to the catalog.
func (r *CatalogRepo) AddLocation(l model.Location) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locations = append(r.locations, l)
}

// AddHousing appends a housing option to the catalog.
func (r *CatalogRepo) AddHousing(h model.Housing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.housings = append(r.housings, h)
}

// AddRestaurant appends a restaurant to the catalog.
func (r *CatalogRepo) AddRestaurant(rest model.Restaurant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.restaurants = append(r.restaurants, rest)
}

// Locations returns a copy of all catalog locations.
func (r *CatalogRepo) Locations() []model.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Location, len(r.locations))
	copy(out, r.locations)
	return out
}

// Housings returns a copy of all catalog housings.
func (r *CatalogRepo) Housings() []model.Housing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Housing, len(r.housings))
	copy(out, r.housings)
	return out
}

// Restaurants returns a copy of all catalog restaurants.
func (r *CatalogRepo) Restaurants() []model.Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Restaurant, len(r.restaurants))
	copy(out, r.restaurants)
	return out
}

// LocationByID looks up a location by id.
func (r *CatalogRepo) LocationByID(id uint64) (model.Location, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.locations {
		if l.ID == id {
			return l, true
		}
	}
	return model.Location{}, false
}

// HousingByID looks up a housing option by id.
func (r *CatalogRepo) HousingByID(id uint64) (model.Housing, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.housings {
		if h.ID == id {
			return h, true
		}
	}
	return model.Housing{}, false
}

// RestaurantByID looks up a restaurant by id.
func (r *CatalogRepo) RestaurantByID(id uint64) (model.Restaurant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rest := range r.restaurants {
		if rest.ID == id {
			return rest, true
		}
	}
	return model.Restaurant{}, false
}

// SeedDemoCatalog fills the catalog with the demo data the route form is
// built from.
func SeedDemoCatalog(c *CatalogRepo) {
	c.AddLocation(model.Location{ID: 1, Name: "Lisbon", Address: "Praca do Comercio 1, Lisbon"})
	c.AddLocation(model.Location{ID: 2, Name: "Porto", Address: "Avenida dos Aliados 10, Porto"})
	c.AddLocation(model.Location{ID: 3, Name: "Madrid", Address: "Puerta del Sol 3, Madrid"})
	c.AddLocation(model.Location{ID: 4, Name: "Barcelona", Address: "La Rambla 51, Barcelona"})
	c.AddLocation(model.Location{ID: 5, Name: "Marseille", Address: "Vieux-Port 2, Marseille"})

	c.AddHousing(model.Housing{ID: 1, Name: "Hotel Mundial", Address: "Praca Martim Moniz 2, Lisbon",
		Offers: []string{"breakfast", "wifi", "parking"}})
	c.AddHousing(model.Housing{ID: 2, Name: "Casa do Rio", Address: "Cais de Gaia 14, Porto",
		Offers: []string{"river view", "wifi"}})
	c.AddHousing(model.Housing{ID: 3, Name: "Hostal Centro", Address: "Calle Mayor 21, Madrid",
		Offers: []string{"shared kitchen", "laundry"}})

	c.AddRestaurant(model.Restaurant{ID: 1, Name: "Taberna Azul", Address: "Rua Augusta 88, Lisbon",
		Menu: []string{"bacalhau", "caldo verde", "pastel de nata"}})
	c.AddRestaurant(model.Restaurant{ID: 2, Name: "Casa Paella", Address: "Carrer de Blai 9, Barcelona",
		Menu: []string{"paella", "gazpacho", "crema catalana"}})
	c.AddRestaurant(model.Restaurant{ID: 3, Name: "Chez Marius", Address: "Quai de Rive Neuve 5, Marseille",
		Menu: []string{"bouillabaisse", "ratatouille"}})
}
