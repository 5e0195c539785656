// Package access holds the pure authorization predicates: role policy
// checks over a profile, and resource guards over a resource's ownership
// fields. A nil or unknown profile is always unauthorized.
package access

import (
	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// HasRole reports whether the profile holds one of the given roles.
// A nil profile never holds any role.
func HasRole(p *domain.UserProfile, roles ...domain.Role) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the profile is an admin. Admins implicitly
// satisfy every role-gated check system-wide.
func IsAdmin(p *domain.UserProfile) bool {
	return HasRole(p, domain.RoleAdmin)
}

// IsTranslator reports whether the profile is a translator or admin.
func IsTranslator(p *domain.UserProfile) bool {
	return HasRole(p, domain.RoleAdmin, domain.RoleTranslator)
}

// IsEditor reports whether the profile is an editor or admin.
func IsEditor(p *domain.UserProfile) bool {
	return HasRole(p, domain.RoleAdmin, domain.RoleEditor)
}

// IsClient reports whether the profile is a client or admin.
func IsClient(p *domain.UserProfile) bool {
	return HasRole(p, domain.RoleAdmin, domain.RoleClient)
}

// CanCreateProject gates project creation: clients create their own
// projects, admins create on behalf of anyone.
func CanCreateProject(p *domain.UserProfile) bool {
	return IsAdmin(p) || IsClient(p)
}

// CanUpdateProject gates project field updates: only the owning client or
// an admin.
func CanUpdateProject(p *domain.UserProfile, project *domain.Project) bool {
	if p == nil || project == nil {
		return false
	}
	return IsAdmin(p) || project.ClientID == p.ID
}

// CanCreateTask gates task creation: staff roles only.
func CanCreateTask(p *domain.UserProfile) bool {
	return IsAdmin(p) || IsTranslator(p) || IsEditor(p)
}

// CanUpdateTaskStatus gates status changes: admin, any editor, or the
// task's own assignee.
func CanUpdateTaskStatus(p *domain.UserProfile, task *domain.Task) bool {
	if p == nil || task == nil {
		return false
	}
	if IsAdmin(p) || IsEditor(p) {
		return true
	}
	return task.AssigneeID != "" && task.AssigneeID == p.ID
}

// CanViewProject reports list/read visibility of a single project.
func CanViewProject(p *domain.UserProfile, project *domain.Project) bool {
	if p == nil || project == nil {
		return false
	}
	return IsAdmin(p) || project.IsMember(p.ID)
}
