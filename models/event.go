package models

import "time"

// EventInfo is the fixed set of facts used to build calendar entries.
// Start and End are wall-clock times without a zone offset.
type EventInfo struct {
	Title       string
	Start       time.Time
	End         time.Time
	Location    string
	Description string
	TimeZone    string // IANA name, informational only
}

// CommunionEvent returns the occasion's EventInfo literal.
func CommunionEvent() EventInfo {
	return EventInfo{
		Title:       "First Holy Communion Celebration: Anaia Mary Joy",
		Start:       time.Date(2025, time.December, 27, 16, 0, 0, 0, time.UTC),
		End:         time.Date(2025, time.December, 27, 18, 30, 0, 0, time.UTC),
		Location:    "St. Joseph's Metropolitan Cathedral, Palayam, Thiruvananthapuram",
		Description: "Join us for the First Holy Communion Celebration of Anaia Mary Joy.",
		TimeZone:    "Asia/Kolkata",
	}
}
