package policy

import "food-ordering-api/models"

// Action is a permission-gated operation name
type Action string

const (
	ActionViewCatalog           Action = "view_catalog"
	ActionCreateOrder           Action = "create_order"
	ActionCheckoutOrder         Action = "checkout_order"
	ActionCancelOrder           Action = "cancel_order"
	ActionManagePaymentMethods  Action = "manage_payment_methods"
	ActionViewOwnPaymentMethods Action = "view_own_payment_methods"
)

// allowedRoles is the authoritative permission table
var allowedRoles = map[Action][]models.UserRole{
	ActionViewCatalog:           {models.RoleAdmin, models.RoleManager, models.RoleMember},
	ActionCreateOrder:           {models.RoleAdmin, models.RoleManager, models.RoleMember},
	ActionCheckoutOrder:         {models.RoleAdmin, models.RoleManager},
	ActionCancelOrder:           {models.RoleAdmin, models.RoleManager},
	ActionManagePaymentMethods:  {models.RoleAdmin},
	ActionViewOwnPaymentMethods: {models.RoleAdmin, models.RoleManager, models.RoleMember},
}

// Authorize reports whether the role may perform the action. Pure decision,
// no side effects; an unknown action is always denied.
func Authorize(role models.UserRole, action Action) bool {
	for _, r := range allowedRoles[action] {
		if r == role {
			return true
		}
	}
	return false
}

// RolesFor returns the roles permitted to perform an action, for error
// messages and docs.
func RolesFor(action Action) []models.UserRole {
	return allowedRoles[action]
}
