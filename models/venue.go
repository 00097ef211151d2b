package models

// Venue is one of the places shown on the invitation page.
type Venue struct {
	Kind      VenueKind
	Heading   string
	Name      string
	Address   string
	TimeLabel string
	DateLabel string
	Note      string // optional line above the time, e.g. "Reception to follow"
	MapURL    string
}

// VenueKind selects the card icon.
type VenueKind string

const (
	VenueKindCeremony  VenueKind = "CEREMONY"
	VenueKindReception VenueKind = "RECEPTION"
)
