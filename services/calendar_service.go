package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"communion.invite/configs/configslog"
	"communion.invite/models"
	"communion.invite/pkg/calendarlink"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CalendarServiceError is a calendar export error.
type CalendarServiceError string

func (e CalendarServiceError) Error() string { return string(e) }

const (
	ErrCalendarEncodeFailed CalendarServiceError = "calendar file could not be encoded"
	ErrCalendarInvalidRange CalendarServiceError = "event ends before it starts"
)

// ProductID identifies this application in exported calendar files.
const ProductID = "-//communion.invite//Invitation//EN"

// ICalendarService builds "add to calendar" artifacts for an event.
type ICalendarService interface {
	GoogleLink(ev models.EventInfo) string
	WriteICS(ctx context.Context, ev models.EventInfo, w io.Writer) error
}

// CalendarService implements ICalendarService.
type CalendarService struct {
	now func() time.Time
}

// NewCalendarService returns a CalendarService stamping files with the current time.
func NewCalendarService() ICalendarService {
	return &CalendarService{now: time.Now}
}

// GoogleLink returns the Google Calendar template URL for ev.
func (s *CalendarService) GoogleLink(ev models.EventInfo) string {
	return calendarlink.Build(ev)
}

// WriteICS encodes ev as a single-event iCalendar file. Start and end are
// written as floating local times, matching the Google link.
func (s *CalendarService) WriteICS(ctx context.Context, ev models.EventInfo, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ev.End.Before(ev.Start) {
		return ErrCalendarInvalidRange
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Children = append(cal.Children, s.toVEvent(ev))

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		configslog.Log.Error("ICS encode failed", zap.String("title", ev.Title), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrCalendarEncodeFailed, err)
	}
	return nil
}

// EventUID derives a stable UID so re-importing the file updates the same entry.
func EventUID(ev models.EventInfo) string {
	name := ev.Title + "|" + ev.Start.Format(calendarlink.DateTimeLayout)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()
}

func (s *CalendarService) toVEvent(ev models.EventInfo) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, EventUID(ev))
	ve.Props.SetDateTime(ical.PropDateTimeStamp, s.now().UTC())
	ve.Props.Set(floatingDateTime(ical.PropDateTimeStart, ev.Start))
	ve.Props.Set(floatingDateTime(ical.PropDateTimeEnd, ev.End))
	ve.Props.SetText(ical.PropSummary, ev.Title)

	if ev.Description != "" {
		ve.Props.SetText(ical.PropDescription, ev.Description)
	}
	if ev.Location != "" {
		ve.Props.SetText(ical.PropLocation, ev.Location)
	}
	link := ical.NewProp(ical.PropURL)
	link.Value = calendarlink.Build(ev)
	ve.Props.Set(link)
	return ve
}

func floatingDateTime(name string, t time.Time) *ical.Prop {
	p := ical.NewProp(name)
	p.Value = t.Format(calendarlink.DateTimeLayout)
	return p
}

var _ ICalendarService = (*CalendarService)(nil)
