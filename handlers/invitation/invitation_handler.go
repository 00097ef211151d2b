package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"communion.invite/configs/configslog"
	"communion.invite/models"
	"communion.invite/pkg/renderer"
	"communion.invite/pkg/rsvpdialog"
	"communion.invite/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Public paths rendered into the page.
const (
	PathHome         = "/"
	PathCalendar     = "/calendar"
	PathCalendarICS  = "/calendar.ics"
	PathRSVP         = "/rsvp"
	PathRSVPClose    = "/rsvp/close"
	calendarFileName = "first-holy-communion.ics"
)

// InvitationHandler serves the invitation page and its RSVP dialog.
type InvitationHandler struct {
	invitationService services.IInvitationService
	calendarService   services.ICalendarService
}

// NewInvitationHandler returns an InvitationHandler over the given services.
func NewInvitationHandler(invitationService services.IInvitationService, calendarService services.ICalendarService) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		calendarService:   calendarService,
	}
}

// ShowInvitation renders the page with the RSVP dialog closed.
func (h *InvitationHandler) ShowInvitation(c *fiber.Ctx) error {
	return h.renderPage(c, rsvpdialog.New(), http.StatusOK)
}

// ShowRSVPForm renders the page with the empty RSVP form open.
func (h *InvitationHandler) ShowRSVPForm(c *fiber.Ctx) error {
	return h.renderPage(c, h.invitationService.OpenRSVP(c.UserContext()), http.StatusOK)
}

// SubmitRSVP shows the confirmation for a form with a name, or the form again
// when the name is missing. The response is not stored or logged.
func (h *InvitationHandler) SubmitRSVP(c *fiber.Ctx) error {
	var form models.RSVPForm
	if err := c.BodyParser(&form); err != nil {
		configslog.Log.Warn("SubmitRSVP: form body could not be parsed", zap.Error(err))
		form = models.RSVPForm{}
	}

	dialog, err := h.invitationService.SubmitRSVP(c.UserContext(), form)
	if err != nil {
		if errors.Is(err, services.ErrRSVPNameRequired) {
			return h.renderPage(c, dialog, http.StatusUnprocessableEntity)
		}
		configslog.Log.Error("SubmitRSVP: unexpected dialog error", zap.Error(err))
		return renderer.Error(c, "Your response could not be processed.")
	}
	return h.renderPage(c, dialog, http.StatusOK)
}

// CloseRSVP dispatches a dismiss click named by ?target= (backdrop, close or
// surface; close when absent). Once the dialog is closed it redirects home;
// a contained click re-renders the open dialog.
func (h *InvitationHandler) CloseRSVP(c *fiber.Ctx) error {
	target := rsvpdialog.Target(c.Query("target"))
	dialog := h.invitationService.CloseRSVP(c.UserContext(), target)
	if dialog.State() != rsvpdialog.StateClosed {
		return h.renderPage(c, dialog, http.StatusOK)
	}
	return c.Redirect(PathHome, fiber.StatusSeeOther)
}

// AddToCalendar redirects to the calendar provider's pre-filled event page.
func (h *InvitationHandler) AddToCalendar(c *fiber.Ctx) error {
	return c.Redirect(h.invitationService.CalendarLink(), fiber.StatusFound)
}

// DownloadICS serves the event as an iCalendar file.
func (h *InvitationHandler) DownloadICS(c *fiber.Ctx) error {
	inv := h.invitationService.GetInvitation(c.UserContext())

	var buf bytes.Buffer
	if err := h.calendarService.WriteICS(c.UserContext(), inv.Event, &buf); err != nil {
		configslog.Log.Error("DownloadICS: calendar file could not be written", zap.Error(err))
		return renderer.Error(c, "The calendar file could not be created.")
	}

	c.Attachment(calendarFileName)
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *InvitationHandler) renderPage(c *fiber.Ctx, dialog *rsvpdialog.Dialog, status int) error {
	inv := h.invitationService.GetInvitation(c.UserContext())
	return renderer.Render(c, "invitation/show", renderer.LayoutMain, fiber.Map{
		"Title":         inv.Heading + " – " + inv.Honoree,
		"Invitation":    inv,
		"HeroImageURL":  h.invitationService.HeroImageURL(),
		"CalendarURL":   PathCalendar,
		"ICSURL":        PathCalendarICS,
		"RSVPURL":       PathRSVP,
		"RSVPCloseURL":  PathRSVPClose,
		"RSVPOpen":      dialog.IsOpen(),
		"RSVPSubmitted": dialog.IsSubmitted(),
		"RSVPState":     dialog.State(),
		"Form":          dialog.Form(),
		"GuestCounts":   models.GuestCounts(),
	}, status)
}
