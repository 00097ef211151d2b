package routes

import (
	handlers "communion.invite/handlers/invitation"
	"communion.invite/services"

	"github.com/gofiber/fiber/v2"
)

// registerInvitationRoutes mounts the public invitation page, the calendar
// endpoints and the RSVP dialog views.
func registerInvitationRoutes(app *fiber.App, invitationService services.IInvitationService, calendarService services.ICalendarService) {
	h := handlers.NewInvitationHandler(invitationService, calendarService)

	app.Get(handlers.PathHome, h.ShowInvitation)
	app.Get(handlers.PathCalendar, h.AddToCalendar)
	app.Get(handlers.PathCalendarICS, h.DownloadICS)

	rsvp := app.Group(handlers.PathRSVP)
	rsvp.Get("/", h.ShowRSVPForm)
	rsvp.Post("/", h.SubmitRSVP)
	rsvp.Get("/close", h.CloseRSVP)
}
