package policy

import (
	"gorm.io/gorm"

	"food-ordering-api/models"
)

// RegionScope is the data-scoping predicate derived from a caller identity.
// Admins match every country; everyone else only their own.
type RegionScope struct {
	all     bool
	country models.Country
}

// ScopeFor derives the region predicate for an identity.
func ScopeFor(identity models.Identity) RegionScope {
	if identity.Role == models.RoleAdmin {
		return RegionScope{all: true}
	}
	return RegionScope{country: identity.Country}
}

// Allows reports whether a record in the given country is visible under
// this scope.
func (s RegionScope) Allows(country models.Country) bool {
	return s.all || s.country == country
}

// Apply narrows a query to the scope's country. Listings use this; single
// fetches use Allows so an out-of-region hit can be reported as forbidden
// rather than silently missing.
func (s RegionScope) Apply(db *gorm.DB) *gorm.DB {
	if s.all {
		return db
	}
	return db.Where("country = ?", s.country)
}
