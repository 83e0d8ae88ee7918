package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
// The policy table is data, not code: route guards and services consult the
// enforcer instead of hard-coding role checks.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// SysAdmin: manage most things except RBAC
		{RoleSysAdmin, DomainSys, ResourceUser, ActionManage, EffectAllow},
		{RoleSysAdmin, DomainSys, ResourceAppointment, ActionManage, EffectAllow},
		{RoleSysAdmin, DomainSys, ResourceDoctorProfile, ActionManage, EffectAllow},
		{RoleSysAdmin, DomainSys, ResourcePatientProfile, ActionManage, EffectAllow},
		{RoleSysAdmin, DomainSys, ResourceAudit, ActionRead, EffectAllow},

		// Doctors own their schedule surface and decide on appointments
		{RoleClinicDoctor, DomainSys, ResourceWorkDay, ActionManage, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceScheduleException, ActionManage, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceDoctorLeave, ActionManage, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceScheduleExport, ActionRead, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceAppointment, ActionUpdate, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceAppointment, ActionDelete, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceMessage, ActionCreate, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceMessage, ActionRead, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceMessage, ActionDelete, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceDoctorProfile, ActionRead, EffectAllow},
		{RoleClinicDoctor, DomainSys, ResourceDoctorProfile, ActionList, EffectAllow},

		// Patients browse doctors, book appointments and chat
		{RoleClinicPatient, DomainSys, ResourceDoctorProfile, ActionRead, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceDoctorProfile, ActionList, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceScheduleExport, ActionRead, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceAppointment, ActionCreate, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceAppointment, ActionRead, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceAppointment, ActionList, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceAppointment, ActionDelete, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceMessage, ActionCreate, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceMessage, ActionRead, EffectAllow},
		{RoleClinicPatient, DomainSys, ResourceMessage, ActionDelete, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
	}

	allPolicies := append(sysPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignClinicRole assigns a clinic role (doctor or patient) to a user.
// Call this at signup, after the users.role column is decided.
func AssignClinicRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleClinicDoctor, RoleClinicPatient:
		// valid clinic roles
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// AssignSystemRole assigns a system-level role to a user.
// Note: RoleSysSuperAdmin should be assigned manually/carefully.
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleSysAdmin:
		// valid system role that can be assigned programmatically
	case RoleSysSuperAdmin:
		// superadmin is valid but should be assigned with caution
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}
