package constants

import "fmt"

// Role user pada sistem field-service
const (
	RoleAdmin         = "ADMIN"
	RoleSupervisor    = "SUPERVISOR"
	RoleServicePerson = "SERVICE_PERSON"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySupervisorsCanAccess = "❌ Hanya supervisor atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSupervisor(feature string) string {
	return fmt.Sprintf(ErrOnlySupervisorsCanAccess, feature)
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSupervisor, RoleServicePerson:
		return true
	}
	return false
}
