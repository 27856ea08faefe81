package policy_test

import (
	"testing"

	"food-ordering-api/models"
	"food-ordering-api/policy"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		role   models.UserRole
		action policy.Action
		want   bool
	}{
		{"admin views catalog", models.RoleAdmin, policy.ActionViewCatalog, true},
		{"manager views catalog", models.RoleManager, policy.ActionViewCatalog, true},
		{"member views catalog", models.RoleMember, policy.ActionViewCatalog, true},
		{"admin creates order", models.RoleAdmin, policy.ActionCreateOrder, true},
		{"member creates order", models.RoleMember, policy.ActionCreateOrder, true},
		{"admin checkout", models.RoleAdmin, policy.ActionCheckoutOrder, true},
		{"manager checkout", models.RoleManager, policy.ActionCheckoutOrder, true},
		{"member checkout denied", models.RoleMember, policy.ActionCheckoutOrder, false},
		{"manager cancel", models.RoleManager, policy.ActionCancelOrder, true},
		{"member cancel denied", models.RoleMember, policy.ActionCancelOrder, false},
		{"admin manages payment methods", models.RoleAdmin, policy.ActionManagePaymentMethods, true},
		{"manager manage payment methods denied", models.RoleManager, policy.ActionManagePaymentMethods, false},
		{"member manage payment methods denied", models.RoleMember, policy.ActionManagePaymentMethods, false},
		{"member views own payment methods", models.RoleMember, policy.ActionViewOwnPaymentMethods, true},
		{"unknown action denied", models.RoleAdmin, policy.Action("reboot_server"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Authorize(tt.role, tt.action); got != tt.want {
				t.Errorf("Authorize(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
			}
		})
	}
}

func TestRolesFor(t *testing.T) {
	roles := policy.RolesFor(policy.ActionCheckoutOrder)
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles for checkout, got %d", len(roles))
	}
	for _, r := range roles {
		if r == models.RoleMember {
			t.Error("member must not be allowed to checkout")
		}
	}
}
