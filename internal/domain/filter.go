package domain

// Filter names understood by the public listings.
const (
	FilterExperienceLevel = "experience_level"
	FilterAvailability    = "availability"
	FilterLocation        = "location"
	FilterCategory        = "category"
	FilterComplexity      = "complexity"
)
