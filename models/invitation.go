package models

// Invitation is everything the public page renders. It is built once from
// literals and shared read-only between requests.
type Invitation struct {
	Greeting  string // "Welcome to the"
	Heading   string
	Honoree   string
	DateLabel string
	DayLabel  string

	HeroImage         string // file name under the static dir
	HeroImageFallback string // remote URL used when the local file is missing
	HeroImageAlt      string

	Ceremony  Venue
	Reception Venue

	Verse          string
	VerseReference string

	InviteHeading string
	InviteSubline string
	FooterLine    string
	FooterSign    string

	Event EventInfo
}

// Venues returns the venue cards in display order.
func (i *Invitation) Venues() []Venue {
	return []Venue{i.Ceremony, i.Reception}
}

// CommunionInvitation returns the page content for Anaia Mary Joy's First Holy Communion.
func CommunionInvitation() *Invitation {
	return &Invitation{
		Greeting:  "Welcome to the",
		Heading:   "First Holy Communion",
		Honoree:   "Anaia Mary Joy",
		DateLabel: "December 27, 2025",
		DayLabel:  "Saturday",

		HeroImage:         "lllll.png",
		HeroImageFallback: "https://images.unsplash.com/photo-1544427920-24e832256f72?auto=format&fit=crop&q=80&w=600",
		HeroImageAlt:      "Communion Elements",

		Ceremony: Venue{
			Kind:      VenueKindCeremony,
			Heading:   "The Holy Mass",
			Name:      "St. Joseph's Metropolitan Cathedral",
			Address:   "Palayam, Thiruvananthapuram",
			TimeLabel: "4:00 PM",
			DateLabel: "Saturday, 27 December",
			MapURL:    "https://maps.app.goo.gl/fq3fnUGT4w8FBjjD8",
		},
		Reception: Venue{
			Kind:      VenueKindReception,
			Heading:   "Reception",
			Name:      "Hotel Residency Tower",
			Address:   "South Gate of Secretariat, Press Rd, Statue, Palayam, Thiruvananthapuram",
			TimeLabel: "After Mass",
			Note:      "Reception to follow",
			MapURL:    "https://maps.app.goo.gl/tEmEy3dbvg84qz379",
		},

		Verse:          "I am the bread of life. Whoever comes to me will never go hungry, and whoever believes in me will never be thirsty.",
		VerseReference: "John 6:35",

		InviteHeading: "Celebrate With Us",
		InviteSubline: "We would be honored by your presence",
		FooterLine:    "With Love",
		FooterSign:    "The Family",

		Event: CommunionEvent(),
	}
}
