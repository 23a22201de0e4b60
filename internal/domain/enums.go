package domain

// ExperienceLevel is the self-declared seniority of a creator.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

func (l ExperienceLevel) String() string { return string(l) }

func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceExpert:
		return true
	}
	return false
}

// Availability tells clients whether a creator takes new work.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

func (a Availability) String() string { return string(a) }

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// ProfileStatus is the moderation state of a creator profile.
// Only approved profiles are visible in the public directory.
type ProfileStatus string

const (
	ProfileStatusDraft    ProfileStatus = "draft"
	ProfileStatusPending  ProfileStatus = "pending"
	ProfileStatusApproved ProfileStatus = "approved"
	ProfileStatusRejected ProfileStatus = "rejected"
)

func (s ProfileStatus) String() string { return string(s) }

func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusDraft, ProfileStatusPending, ProfileStatusApproved, ProfileStatusRejected:
		return true
	}
	return false
}

// WorkflowStatus is the moderation state of a submitted workflow.
type WorkflowStatus string

const (
	WorkflowStatusDraft    WorkflowStatus = "draft"
	WorkflowStatusPending  WorkflowStatus = "pending"
	WorkflowStatusApproved WorkflowStatus = "approved"
	WorkflowStatusRejected WorkflowStatus = "rejected"
)

func (s WorkflowStatus) String() string { return string(s) }

func (s WorkflowStatus) IsValid() bool {
	switch s {
	case WorkflowStatusDraft, WorkflowStatusPending, WorkflowStatusApproved, WorkflowStatusRejected:
		return true
	}
	return false
}

// WorkflowCategory is one of the fixed marketplace categories.
type WorkflowCategory string

const (
	CategoryECommerce      WorkflowCategory = "E-commerce"
	CategoryCommunication  WorkflowCategory = "Communication"
	CategoryDataManagement WorkflowCategory = "Data Management"
	CategoryAnalytics      WorkflowCategory = "Analytics"
	CategoryFinance        WorkflowCategory = "Finance"
	CategoryMarketing      WorkflowCategory = "Marketing"
	CategoryOperations     WorkflowCategory = "Operations"
	CategoryHR             WorkflowCategory = "HR"
	CategoryContent        WorkflowCategory = "Content"
)

// WorkflowCategories lists the categories in display order.
var WorkflowCategories = []WorkflowCategory{
	CategoryECommerce, CategoryCommunication, CategoryDataManagement,
	CategoryAnalytics, CategoryFinance, CategoryMarketing,
	CategoryOperations, CategoryHR, CategoryContent,
}

func (c WorkflowCategory) String() string { return string(c) }

func (c WorkflowCategory) IsValid() bool {
	for _, known := range WorkflowCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ResourceType identifies a listable collection.
type ResourceType string

const (
	ResourceCreators  ResourceType = "creators"
	ResourceWorkflows ResourceType = "workflows"
)

func (r ResourceType) String() string { return string(r) }

func (r ResourceType) IsValid() bool {
	switch r {
	case ResourceCreators, ResourceWorkflows:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeProfile  EntityType = "PROFILE"
	EntityTypeWorkflow EntityType = "WORKFLOW"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeProfile, EntityTypeWorkflow:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
	AuditActionStatus AuditAction = "STATUS"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionStatus:
		return true
	}
	return false
}

// UserRole is the role claim carried by provider-issued tokens.
type UserRole string

const (
	UserRoleAuthenticated UserRole = "authenticated"
	UserRoleServiceRole   UserRole = "service_role"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAuthenticated, UserRoleServiceRole:
		return true
	}
	return false
}
