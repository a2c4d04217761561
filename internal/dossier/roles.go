package dossier

import "strings"

// Role identifies one of the actors driving the approval workflow.
type Role string

const (
	RoleCOMEX      Role = "COMEX"
	RoleOperations Role = "Operations"
	RoleQF         Role = "QF"

	// RoleNone marks a closed dossier with no pending owner.
	RoleNone Role = "—"
)

// History actor names for entries not attributed to a workflow role.
const (
	ActorSystem  = "System"
	ActorComment = "Comment"
)

var allRoles = []Role{RoleCOMEX, RoleOperations, RoleQF}

// Roles returns the workflow roles in presentation order.
func Roles() []Role {
	cp := make([]Role, len(allRoles))
	copy(cp, allRoles)
	return cp
}

// ParseRole converts free-form input into a known workflow role.
func ParseRole(value string) (Role, bool) {
	trimmed := strings.TrimSpace(value)
	for _, r := range allRoles {
		if strings.EqualFold(trimmed, string(r)) {
			return r, true
		}
	}
	return "", false
}
