package models

import "strings"

// GuestCount is the party size picked in the RSVP form.
type GuestCount string

const (
	GuestCountOne        GuestCount = "1"
	GuestCountTwo        GuestCount = "2"
	GuestCountThree      GuestCount = "3"
	GuestCountFourOrMore GuestCount = "4+"

	DefaultGuestCount = GuestCountOne
)

// GuestCounts lists the selectable options in display order.
func GuestCounts() []GuestCount {
	return []GuestCount{GuestCountOne, GuestCountTwo, GuestCountThree, GuestCountFourOrMore}
}

// Valid reports whether g is one of the selectable options.
func (g GuestCount) Valid() bool {
	for _, opt := range GuestCounts() {
		if g == opt {
			return true
		}
	}
	return false
}

// RSVPForm is the posted RSVP dialog form. It is never stored.
type RSVPForm struct {
	Name   string     `form:"name"`
	Guests GuestCount `form:"guests"`
}

// Normalize trims the name and replaces an unknown guest count with the default.
func (f RSVPForm) Normalize() RSVPForm {
	f.Name = strings.TrimSpace(f.Name)
	if !f.Guests.Valid() {
		f.Guests = DefaultGuestCount
	}
	return f
}
