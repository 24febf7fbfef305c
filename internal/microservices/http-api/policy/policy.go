// Package policy holds the authorization predicates shared by services and routes.
// Every predicate is pure: the caller fetches whatever rows it needs first.
package policy

import "storerating/internal/microservices/http-api/models"

// Principal is the authenticated caller. Role is read from the users table on
// every request, not from the token.
type Principal struct {
	UserID int64
	Email  string
	Role   models.Role
}

func (p Principal) IsAdmin() bool      { return p.Role == models.RoleAdmin }
func (p Principal) IsStoreOwner() bool { return p.Role == models.RoleStoreOwner }

// HasRole reports whether the principal holds any of roles.
func (p Principal) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func CanManageUsers(p Principal) bool  { return p.IsAdmin() }
func CanManageStores(p Principal) bool { return p.IsAdmin() }

// CanRateStore forbids store owners from rating a store they own.
func CanRateStore(p Principal, store *models.Store) bool {
	return !(p.IsStoreOwner() && store.OwnerID == p.UserID)
}

// CanModifyRating allows only the author. Admins get no override.
func CanModifyRating(p Principal, rating *models.Rating) bool {
	return rating.UserID == p.UserID
}

// CanViewRating allows the author, the owner of the rated store, or an admin.
func CanViewRating(p Principal, authorID, storeOwnerID int64) bool {
	return p.IsAdmin() || authorID == p.UserID || storeOwnerID == p.UserID
}

func CanViewOwnerRatings(p Principal) bool {
	return p.HasRole(models.RoleStoreOwner, models.RoleAdmin)
}

// CanViewOwnerStores allows an admin or the owner themself.
func CanViewOwnerStores(p Principal, ownerID int64) bool {
	return p.IsAdmin() || p.UserID == ownerID
}

// StoreScope returns the owner id a store listing must be restricted to, or 0 for no restriction.
func StoreScope(p Principal) int64 {
	if p.IsStoreOwner() {
		return p.UserID
	}
	return 0
}

// CanBeStoreOwner reports whether u may be assigned as the owner of a store.
func CanBeStoreOwner(u *models.User) bool {
	return u != nil && u.Role == models.RoleStoreOwner
}
