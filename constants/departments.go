package constants

const (
	DepartmentAccountant     = "Accountant"
	DepartmentHR             = "HR"
	DepartmentProjectManager = "ProjectManager"
	DepartmentTeamLeader     = "TeamLeader"
	DepartmentSalesEmployee  = "SalesEmployee"
	DepartmentTelecaller     = "Telecaller"
)

var departments = []string{
	DepartmentAccountant,
	DepartmentHR,
	DepartmentProjectManager,
	DepartmentTeamLeader,
	DepartmentSalesEmployee,
	DepartmentTelecaller,
}

func IsValidDepartment(department string) bool {
	for _, d := range departments {
		if d == department {
			return true
		}
	}
	return false
}

func Departments() []string {
	out := make([]string, len(departments))
	copy(out, departments)
	return out
}
