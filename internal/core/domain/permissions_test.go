package domain_test

import (
	"testing"

	"github.com/DKMApps/masjid_kas_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCapabilityAllows(t *testing.T) {
	c := domain.Capability{View: true, Update: true}

	assert.True(t, c.Allows(domain.ActionView))
	assert.True(t, c.Allows(domain.ActionUpdate))
	assert.False(t, c.Allows(domain.ActionCreate))
	assert.False(t, c.Allows(domain.ActionDelete))
	assert.False(t, c.Allows(domain.Action("export")))
}

func TestRoleDefaultPermissions(t *testing.T) {
	tests := []struct {
		name    string
		role    domain.Role
		page    domain.Page
		action  domain.Action
		allowed bool
	}{
		{"admin manages users", domain.RoleAdmin, domain.PageUsers, domain.ActionDelete, true},
		{"admin reads audit logs", domain.RoleAdmin, domain.PageAuditLogs, domain.ActionView, true},
		{"admin cannot delete audit logs", domain.RoleAdmin, domain.PageAuditLogs, domain.ActionDelete, false},
		{"bendahara records transactions", domain.RoleBendahara, domain.PageTransactions, domain.ActionCreate, true},
		{"bendahara reads reports", domain.RoleBendahara, domain.PageReports, domain.ActionView, true},
		{"bendahara cannot manage users", domain.RoleBendahara, domain.PageUsers, domain.ActionView, false},
		{"bendahara cannot change settings", domain.RoleBendahara, domain.PageSettings, domain.ActionUpdate, false},
		{"ketua manages events", domain.RoleKetuaDKM, domain.PageEvents, domain.ActionCreate, true},
		{"ketua cannot record transactions", domain.RoleKetuaDKM, domain.PageTransactions, domain.ActionCreate, false},
		{"viewer reads transactions", domain.RoleViewer, domain.PageTransactions, domain.ActionView, true},
		{"viewer cannot see settings", domain.RoleViewer, domain.PageSettings, domain.ActionView, false},
		{"unknown role has nothing", domain.Role("GUEST"), domain.PageReports, domain.ActionView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := domain.RoleDefaultPermissions(tt.role)
			c, ok := caps[tt.page]
			if !ok {
				assert.False(t, tt.allowed)
				return
			}
			assert.Equal(t, tt.allowed, c.Allows(tt.action))
		})
	}
}

func TestUserCan_AdminAlwaysAllowed(t *testing.T) {
	user := &domain.User{Role: domain.RoleAdmin}

	assert.True(t, user.Can(domain.PageUsers, domain.ActionDelete))
	assert.True(t, user.Can(domain.PageAuditLogs, domain.ActionDelete))
}

func TestUserCan_OverrideWinsOverRoleDefault(t *testing.T) {
	// A viewer granted write access to events keeps the grant even though
	// the role default is read-only.
	user := &domain.User{
		Role: domain.RoleViewer,
		Permissions: domain.PermissionMap{
			domain.PageEvents: {View: true, Create: true, Update: true},
		},
	}

	assert.True(t, user.Can(domain.PageEvents, domain.ActionCreate))
	assert.False(t, user.Can(domain.PageEvents, domain.ActionDelete))
}

func TestUserCan_OverrideCanRevoke(t *testing.T) {
	// An override replaces the default wholesale, so an empty capability
	// revokes even the role's read access.
	user := &domain.User{
		Role: domain.RoleBendahara,
		Permissions: domain.PermissionMap{
			domain.PageReports: {},
		},
	}

	assert.False(t, user.Can(domain.PageReports, domain.ActionView))
	// Pages without an override keep their defaults.
	assert.True(t, user.Can(domain.PageTransactions, domain.ActionCreate))
}

func TestUserCan_MissingPageDenied(t *testing.T) {
	user := &domain.User{Role: domain.RoleViewer}

	assert.False(t, user.Can(domain.PageUsers, domain.ActionView))
}
