package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleTierOrder(t *testing.T) {
	require.Equal(t, 0, RoleTier(RoleCEO))
	require.Less(t, RoleTier(RoleCEO), RoleTier(RoleHR))
	require.Less(t, RoleTier(RoleHR), RoleTier(RoleTeamLeader))
	require.Less(t, RoleTier(RoleTeamLeader), RoleTier(RoleSalesEmployee))
	require.Equal(t, -1, RoleTier("intern"))
}

func TestRoleBelow(t *testing.T) {
	below, ok := RoleBelow(RoleCEO)
	require.True(t, ok)
	require.Equal(t, RoleHR, below)

	below, ok = RoleBelow(RoleHR)
	require.True(t, ok)
	require.Equal(t, RoleTeamLeader, below)

	below, ok = RoleBelow(RoleTeamLeader)
	require.True(t, ok)
	require.Equal(t, RoleSalesEmployee, below)

	// The bottom tier and unknown roles have no downstream.
	_, ok = RoleBelow(RoleSalesEmployee)
	require.False(t, ok)
	_, ok = RoleBelow("intern")
	require.False(t, ok)
}

func TestEnumChecks(t *testing.T) {
	require.True(t, IsValidRole(RoleSalesEmployee))
	require.False(t, IsValidRole(""))

	require.True(t, IsValidDepartment(DepartmentTelecaller))
	require.False(t, IsValidDepartment("Catering"))

	require.True(t, IsValidPriority(TaskPriorityMedium))
	require.False(t, IsValidPriority("urgent"))

	require.True(t, IsValidHolidayStatus(HolidayStatusHalfDay))
	require.False(t, IsValidHolidayStatus("Holiday"))
}
