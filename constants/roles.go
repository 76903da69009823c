package constants

const (
	RoleCEO           = "ceo"
	RoleHR            = "hr"
	RoleTeamLeader    = "team_leader"
	RoleSalesEmployee = "sales_employee"
)

// roleOrder is the closed hierarchy, highest tier first. Forwarding always
// moves exactly one position down this slice.
var roleOrder = []string{
	RoleCEO,
	RoleHR,
	RoleTeamLeader,
	RoleSalesEmployee,
}

func IsValidRole(role string) bool {
	return RoleTier(role) >= 0
}

// RoleTier returns the position of role in the hierarchy (0 is highest),
// or -1 for an unknown role.
func RoleTier(role string) int {
	for i, r := range roleOrder {
		if r == role {
			return i
		}
	}
	return -1
}

// RoleBelow returns the role one tier below the given one. The second return
// is false for an unknown role or for the bottom of the hierarchy.
func RoleBelow(role string) (string, bool) {
	tier := RoleTier(role)
	if tier < 0 || tier+1 >= len(roleOrder) {
		return "", false
	}
	return roleOrder[tier+1], true
}

func Roles() []string {
	out := make([]string, len(roleOrder))
	copy(out, roleOrder)
	return out
}
