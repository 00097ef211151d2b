// Package rsvpdialog holds the view state of the RSVP dialog.
//
// A Dialog is created fresh for every page load and is not safe for
// concurrent use; it lives for the duration of one request.
package rsvpdialog

import (
	"communion.invite/models"
)

// State is the visible fragment of the RSVP dialog.
type State string

const (
	StateClosed        State = "CLOSED"
	StateOpenForm      State = "OPEN_FORM"
	StateOpenConfirmed State = "OPEN_CONFIRMED"
)

// IsOpen reports whether the dialog is shown at all.
func (s State) IsOpen() bool {
	return s == StateOpenForm || s == StateOpenConfirmed
}

// IsSubmitted reports whether the confirmation fragment is shown.
func (s State) IsSubmitted() bool {
	return s == StateOpenConfirmed
}

// Target is where a click inside the open dialog landed.
type Target string

const (
	TargetBackdrop    Target = "backdrop"
	TargetSurface     Target = "surface"
	TargetCloseButton Target = "close"
)

// DialogError is returned when a trigger is rejected by a guard.
type DialogError string

func (e DialogError) Error() string { return string(e) }

const (
	ErrNameRequired DialogError = "rsvp name is required"
)

type trigger string

const (
	triggerOpen     trigger = "open"
	triggerSubmit   trigger = "submit"
	triggerClose    trigger = "close"
	triggerBackdrop trigger = "backdrop"
)

// transitions lists every permitted move. Pairs not in the table are ignored.
var transitions = map[State]map[trigger]State{
	StateClosed: {
		triggerOpen: StateOpenForm,
	},
	StateOpenForm: {
		triggerSubmit:   StateOpenConfirmed,
		triggerClose:    StateClosed,
		triggerBackdrop: StateClosed,
	},
	StateOpenConfirmed: {
		triggerClose:    StateClosed,
		triggerBackdrop: StateClosed,
	},
}

// Dialog is the RSVP view-state controller.
type Dialog struct {
	state State
	form  models.RSVPForm
}

// New returns a closed dialog.
func New() *Dialog {
	return &Dialog{state: StateClosed}
}

// State returns the current state.
func (d *Dialog) State() State { return d.state }

// IsOpen mirrors State().IsOpen().
func (d *Dialog) IsOpen() bool { return d.state.IsOpen() }

// IsSubmitted mirrors State().IsSubmitted().
func (d *Dialog) IsSubmitted() bool { return d.state.IsSubmitted() }

// Form returns the last form accepted or rejected while the dialog was open.
// It is empty after Open.
func (d *Dialog) Form() models.RSVPForm { return d.form }

// Open shows an empty RSVP form. Ignored unless the dialog is closed.
func (d *Dialog) Open() State {
	if d.fire(triggerOpen) {
		d.form = models.RSVPForm{Guests: models.DefaultGuestCount}
	}
	return d.state
}

// Submit moves the form to the confirmation view. An empty name keeps the
// form visible and returns ErrNameRequired. Nothing is sent anywhere.
func (d *Dialog) Submit(form models.RSVPForm) (State, error) {
	if d.state != StateOpenForm {
		return d.state, nil
	}
	form = form.Normalize()
	d.form = form
	if form.Name == "" {
		return d.state, ErrNameRequired
	}
	d.fire(triggerSubmit)
	return d.state, nil
}

// Close dismisses the dialog from either open view.
func (d *Dialog) Close() State {
	if d.fire(triggerClose) {
		d.form = models.RSVPForm{}
	}
	return d.state
}

// Click handles a click while the dialog is open. The backdrop and the close
// button dismiss; clicks on the surface are contained and never close the dialog.
func (d *Dialog) Click(target Target) State {
	switch target {
	case TargetCloseButton:
		return d.Close()
	case TargetBackdrop:
		if d.fire(triggerBackdrop) {
			d.form = models.RSVPForm{}
		}
	}
	return d.state
}

func (d *Dialog) fire(t trigger) bool {
	next, ok := transitions[d.state][t]
	if !ok {
		return false
	}
	d.state = next
	return true
}
