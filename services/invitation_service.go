package services

import (
	"context"
	"errors"

	"communion.invite/models"
	"communion.invite/pkg/assets"
	"communion.invite/pkg/rsvpdialog"
)

// InvitationServiceError is an invitation page error.
type InvitationServiceError string

func (e InvitationServiceError) Error() string { return string(e) }

const (
	ErrRSVPNameRequired InvitationServiceError = "please enter your name"
)

// IInvitationService serves the invitation page content and RSVP view state.
type IInvitationService interface {
	GetInvitation(ctx context.Context) *models.Invitation
	HeroImageURL() string
	CalendarLink() string
	OpenRSVP(ctx context.Context) *rsvpdialog.Dialog
	SubmitRSVP(ctx context.Context, form models.RSVPForm) (*rsvpdialog.Dialog, error)
	CloseRSVP(ctx context.Context, target rsvpdialog.Target) *rsvpdialog.Dialog
}

// InvitationService implements IInvitationService. Its fields are set once at
// construction and only read afterwards, so one instance serves all requests.
type InvitationService struct {
	invitation   *models.Invitation
	heroImageURL string
	calendarLink string
}

// NewInvitationService builds the service for the communion invitation. The
// hero image is looked up under staticDir once; when it is missing the remote
// fallback is used for the lifetime of the process.
func NewInvitationService(staticDir string, calendar ICalendarService) IInvitationService {
	inv := models.CommunionInvitation()
	return &InvitationService{
		invitation:   inv,
		heroImageURL: assets.Resolve(staticDir, inv.HeroImage, inv.HeroImageFallback),
		calendarLink: calendar.GoogleLink(inv.Event),
	}
}

// GetInvitation returns the page content. Callers must not modify it.
func (s *InvitationService) GetInvitation(ctx context.Context) *models.Invitation {
	return s.invitation
}

// HeroImageURL returns the resolved hero image URL.
func (s *InvitationService) HeroImageURL() string {
	return s.heroImageURL
}

// CalendarLink returns the "add to calendar" URL for the event.
func (s *InvitationService) CalendarLink() string {
	return s.calendarLink
}

// OpenRSVP returns a fresh dialog showing the empty form.
func (s *InvitationService) OpenRSVP(ctx context.Context) *rsvpdialog.Dialog {
	d := rsvpdialog.New()
	d.Open()
	return d
}

// SubmitRSVP opens a fresh dialog and submits form to it. The response is
// neither stored nor forwarded; only the resulting view state is returned.
// On an empty name the dialog stays on the form and ErrRSVPNameRequired is returned.
func (s *InvitationService) SubmitRSVP(ctx context.Context, form models.RSVPForm) (*rsvpdialog.Dialog, error) {
	d := s.OpenRSVP(ctx)
	if _, err := d.Submit(form); err != nil {
		if errors.Is(err, rsvpdialog.ErrNameRequired) {
			return d, ErrRSVPNameRequired
		}
		return d, err
	}
	return d, nil
}

// CloseRSVP opens a fresh dialog and dispatches a dismiss click on target.
// The close button and the backdrop close it; the surface leaves it open.
func (s *InvitationService) CloseRSVP(ctx context.Context, target rsvpdialog.Target) *rsvpdialog.Dialog {
	d := s.OpenRSVP(ctx)
	if target == "" {
		target = rsvpdialog.TargetCloseButton
	}
	d.Click(target)
	return d
}

var _ IInvitationService = (*InvitationService)(nil)
