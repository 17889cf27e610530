package roster

// ColumnRole is the semantic classification of a spreadsheet column.
type ColumnRole string

const (
	RoleFirstName    ColumnRole = "first_name"
	RoleLastName     ColumnRole = "last_name"
	RoleIdentifier   ColumnRole = "identifier"
	RoleAssessment   ColumnRole = "assessment"
	RoleUnclassified ColumnRole = "unclassified"
)

// RoleOverrides maps header names to manually chosen roles. Overrides live
// for one session only; they are never persisted across reloads, so a fresh
// load always starts from classifier output.
type RoleOverrides map[string]ColumnRole

// Apply returns the override for header if present, else the given role.
func (o RoleOverrides) Apply(header string, role ColumnRole) ColumnRole {
	if o == nil {
		return role
	}
	if r, ok := o[header]; ok {
		return r
	}
	return role
}
