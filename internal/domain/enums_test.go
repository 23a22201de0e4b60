package domain

import "testing"

func TestExperienceLevel_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level ExperienceLevel
		want  bool
	}{
		{ExperienceBeginner, true},
		{ExperienceIntermediate, true},
		{ExperienceAdvanced, true},
		{ExperienceExpert, true},
		{ExperienceLevel("Expert"), false},
		{ExperienceLevel(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			t.Parallel()
			if got := tt.level.IsValid(); got != tt.want {
				t.Errorf("ExperienceLevel(%q).IsValid() = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestAvailability_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a    Availability
		want bool
	}{
		{AvailabilityAvailable, true},
		{AvailabilityBusy, true},
		{AvailabilityUnavailable, true},
		{Availability("away"), false},
	}
	for _, tt := range tests {
		if got := tt.a.IsValid(); got != tt.want {
			t.Errorf("Availability(%q).IsValid() = %v, want %v", tt.a, got, tt.want)
		}
	}
}

func TestProfileStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range []ProfileStatus{ProfileStatusDraft, ProfileStatusPending, ProfileStatusApproved, ProfileStatusRejected} {
		if !s.IsValid() {
			t.Errorf("ProfileStatus(%q) should be valid", s)
		}
	}
	if ProfileStatus("published").IsValid() {
		t.Error("unknown status should be invalid")
	}
}

func TestWorkflowCategory_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		c    WorkflowCategory
		want bool
	}{
		{CategoryECommerce, true},
		{CategoryDataManagement, true},
		{CategoryHR, true},
		{WorkflowCategory("All"), false},
		{WorkflowCategory("hr"), false},
		{WorkflowCategory(""), false},
	}
	for _, tt := range tests {
		if got := tt.c.IsValid(); got != tt.want {
			t.Errorf("WorkflowCategory(%q).IsValid() = %v, want %v", tt.c, got, tt.want)
		}
	}
	if len(WorkflowCategories) != 9 {
		t.Errorf("len(WorkflowCategories) = %d, want 9", len(WorkflowCategories))
	}
}

func TestResourceType_String(t *testing.T) {
	t.Parallel()
	if got := ResourceCreators.String(); got != "creators" {
		t.Errorf("got %q, want creators", got)
	}
	if ResourceType("users").IsValid() {
		t.Error("unknown resource type should be invalid")
	}
}

func TestAuditAction_IsValid(t *testing.T) {
	t.Parallel()
	if !AuditActionStatus.IsValid() {
		t.Error("STATUS should be valid")
	}
	if AuditAction("PATCH").IsValid() {
		t.Error("PATCH should be invalid")
	}
}
