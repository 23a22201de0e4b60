package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workflow is an automation submitted by a creator.
type Workflow struct {
	ID            uuid.UUID
	ProfileID     uuid.UUID
	Title         string
	Description   *string
	Tags          []string
	Category      *WorkflowCategory
	ScreenshotURL *string
	VideoURL      *string
	Complexity    *string
	JSONN8N       *string
	Status        WorkflowStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Author is filled in by the discovery service, not stored.
	Author *CreatorSummary
}

// IsPublic reports whether the workflow may appear in public listings.
func (w *Workflow) IsPublic() bool {
	return w.Status == WorkflowStatusApproved
}

// WorkflowChanges carries a partial workflow update. Nil fields are left
// untouched; a non-nil empty string clears an optional column.
type WorkflowChanges struct {
	Title         *string
	Description   *string
	Tags          []string
	Category      *WorkflowCategory
	ScreenshotURL *string
	VideoURL      *string
	Complexity    *string
	JSONN8N       *string
}
