package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SocialLinks holds a creator's optional public profile links.
type SocialLinks struct {
	Website   *string `json:"website,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	GitHub    *string `json:"github,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
	Discord   *string `json:"discord,omitempty"`
	Threads   *string `json:"threads,omitempty"`
}

// Creator is a creator profile. A profile belongs to exactly one
// identity-provider user and becomes public once approved.
type Creator struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Bio             *string
	Location        *string
	Skills          []string
	ExperienceLevel *ExperienceLevel
	Availability    *Availability
	HourlyRate      *float64
	ProfileImage    *string
	Socials         SocialLinks
	Status          ProfileStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsPublic reports whether the profile may appear in the directory.
func (c *Creator) IsPublic() bool {
	return c.Status == ProfileStatusApproved
}

// Summary returns the compact author view embedded in workflow cards.
func (c *Creator) Summary() CreatorSummary {
	return CreatorSummary{
		ID:           c.ID,
		Name:         c.Name,
		ProfileImage: c.ProfileImage,
		Location:     c.Location,
	}
}

// CreatorSummary is the author information shown next to a workflow.
type CreatorSummary struct {
	ID           uuid.UUID
	Name         string
	ProfileImage *string
	Location     *string
}

// ProfileUpdate replaces every editable profile column. Nil pointers
// store NULL.
type ProfileUpdate struct {
	Name            string
	Bio             *string
	Location        *string
	Skills          []string
	ExperienceLevel *ExperienceLevel
	Availability    *Availability
	HourlyRate      *float64
	Socials         SocialLinks
	Status          ProfileStatus
}

// FormatLocation joins province and city the way the profile form stores
// them. Missing parts are skipped.
func FormatLocation(province, city string) string {
	province = strings.TrimSpace(province)
	city = strings.TrimSpace(city)
	switch {
	case province != "" && city != "":
		return province + ", " + city
	case province != "":
		return province
	default:
		return city
	}
}
