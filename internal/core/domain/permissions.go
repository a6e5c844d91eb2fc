package domain

// Page tags a back-office resource that capabilities are granted against.
type Page string

const (
	PageTransactions Page = "transactions"
	PageCategories   Page = "categories"
	PageReports      Page = "reports"
	PageEvents       Page = "events"
	PageUsers        Page = "users"
	PageSettings     Page = "settings"
	PageAuditLogs    Page = "audit-logs"
)

// Action is one of the four capability verbs granted per page.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Capability is the set of named boolean grants for a single page.
type Capability struct {
	View   bool `json:"view"`
	Create bool `json:"create"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// Allows reports whether the capability grants the given action.
func (c Capability) Allows(action Action) bool {
	switch action {
	case ActionView:
		return c.View
	case ActionCreate:
		return c.Create
	case ActionUpdate:
		return c.Update
	case ActionDelete:
		return c.Delete
	}
	return false
}

// PermissionMap maps pages to capabilities. Stored per user as overrides of
// the role defaults; a page missing from the map falls back to the default.
type PermissionMap map[Page]Capability

var (
	fullAccess = Capability{View: true, Create: true, Update: true, Delete: true}
	readOnly   = Capability{View: true}
)

// RoleDefaultPermissions returns the default capability set for a role.
// Pure function: callers must not mutate the returned map in place.
func RoleDefaultPermissions(role Role) PermissionMap {
	switch role {
	case RoleAdmin:
		return PermissionMap{
			PageTransactions: fullAccess,
			PageCategories:   fullAccess,
			PageReports:      fullAccess,
			PageEvents:       fullAccess,
			PageUsers:        fullAccess,
			PageSettings:     fullAccess,
			PageAuditLogs:    readOnly,
		}
	case RoleBendahara:
		// The treasurer runs the books: full control of transactions and
		// categories, read access to reports and settings.
		return PermissionMap{
			PageTransactions: fullAccess,
			PageCategories:   fullAccess,
			PageReports:      readOnly,
			PageEvents:       readOnly,
			PageSettings:     readOnly,
		}
	case RoleKetuaDKM:
		// The chairman oversees finances read-only but manages events.
		return PermissionMap{
			PageTransactions: readOnly,
			PageCategories:   readOnly,
			PageReports:      readOnly,
			PageEvents:       fullAccess,
			PageSettings:     readOnly,
		}
	case RoleViewer:
		return PermissionMap{
			PageTransactions: readOnly,
			PageReports:      readOnly,
			PageEvents:       readOnly,
		}
	}
	return PermissionMap{}
}
