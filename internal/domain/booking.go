package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-MentorBooking/pkg/types"
)

// WizardStep is the position of a draft in the booking wizard
type WizardStep int

const (
	StepSelectDateTime WizardStep = 1
	StepPayment        WizardStep = 2
	StepReview         WizardStep = 3
	StepConfirmed      WizardStep = 4
)

func (s WizardStep) String() string {
	switch s {
	case StepSelectDateTime:
		return "select_date_time"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// IsValid returns true for steps 1..4
func (s WizardStep) IsValid() bool {
	return s >= StepSelectDateTime && s <= StepConfirmed
}

// BookingDraft is the mentee's in-progress booking, one per mentee.
// All mutation goes through its methods.
type BookingDraft struct {
	MenteeID string

	Mentor       *MentorSummary
	Availability []AvailabilityWindow

	SelectedDate *time.Time // midnight UTC of the chosen calendar day
	SelectedTime string     // "HH:00", empty when not chosen
	Topic        string
	Notes        string
	Timezone     string // IANA name, empty means service default

	DurationMinutes int
	TotalPrice      float64

	Step           WizardStep
	DateWindowDays int

	// Submission outcome
	SessionID      *string
	Error          *string
	IdempotencyKey string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingDraft returns a draft in its initial state
func NewBookingDraft(menteeID string) *BookingDraft {
	d := &BookingDraft{MenteeID: menteeID}
	d.Reset()
	return d
}

// Reset restores the initial value. Identity and timestamps are kept.
func (d *BookingDraft) Reset() {
	d.Mentor = nil
	d.Availability = nil
	d.SelectedDate = nil
	d.SelectedTime = ""
	d.Topic = ""
	d.Notes = ""
	d.Timezone = ""
	d.DurationMinutes = DefaultDurationMinutes
	d.TotalPrice = 0
	d.Step = StepSelectDateTime
	d.DateWindowDays = DefaultDateWindowDays
	d.SessionID = nil
	d.Error = nil
	d.IdempotencyKey = ""
}

// SetMentor attaches the mentor and recomputes the price (flat hourly rate)
func (d *BookingDraft) SetMentor(m MentorSummary) {
	d.Mentor = &m
	d.TotalPrice = m.HourlyRate
}

// SetAvailability replaces the mentor's weekly windows
func (d *BookingDraft) SetAvailability(windows []AvailabilityWindow) {
	d.Availability = windows
}

// SetTimezone sets the IANA timezone used at submission
func (d *BookingDraft) SetTimezone(tz string) {
	d.Timezone = strings.TrimSpace(tz)
}

// SetDate selects a calendar day. The clock part of date is dropped.
func (d *BookingDraft) SetDate(date time.Time) error {
	if d.IsTerminal() {
		return ErrFlowFinished
	}
	day := DateOnly(date)
	d.SelectedDate = &day
	return nil
}

// SetTime selects a time of day. Empty string clears the selection.
func (d *BookingDraft) SetTime(t string) error {
	if d.IsTerminal() {
		return ErrFlowFinished
	}
	if t == "" {
		d.SelectedTime = ""
		return nil
	}
	ts, err := types.NewTimeStringFromString(t)
	if err != nil {
		return ErrInvalidTime
	}
	d.SelectedTime = ts.String()
	return nil
}

// SetTopic sets the free-text topic
func (d *BookingDraft) SetTopic(topic string) error {
	if d.IsTerminal() {
		return ErrFlowFinished
	}
	d.Topic = topic
	return nil
}

// SetNotes sets the free-text notes
func (d *BookingDraft) SetNotes(notes string) error {
	if d.IsTerminal() {
		return ErrFlowFinished
	}
	d.Notes = notes
	return nil
}

// GrowDateWindow extends the generated date strip by DateWindowStep days
func (d *BookingDraft) GrowDateWindow() {
	d.DateWindowDays += DateWindowStep
}

// EnterStep1 applies the auto-selection performed when the wizard shows step 1:
// the first date with a window if none is selected, then the first slot of that
// date if no time is selected or the selected one is not offered anymore.
func (d *BookingDraft) EnterStep1(now time.Time) {
	if d.IsTerminal() {
		return
	}

	if d.SelectedDate == nil {
		dates := GenerateCandidateDates(now, d.DateWindowDays)
		if first, ok := FirstAvailableDate(dates, d.Availability); ok {
			d.SelectedDate = &first
		}
	}

	if d.SelectedDate == nil {
		return
	}

	slots := SlotsForDate(d.Availability, *d.SelectedDate)
	if d.SelectedTime != "" && containsSlot(slots, d.SelectedTime) {
		return
	}
	if len(slots) > 0 {
		d.SelectedTime = slots[0]
	} else {
		d.SelectedTime = ""
	}
}

// DropStaleSelection clears the selected date and time when the date is no
// longer part of the candidate strip generated from now or has no window.
func (d *BookingDraft) DropStaleSelection(now time.Time) {
	if d.IsTerminal() || d.SelectedDate == nil {
		return
	}

	dates := GenerateCandidateDates(now, d.DateWindowDays)
	day := *d.SelectedDate
	if len(dates) > 0 && !day.Before(dates[0]) && !day.After(dates[len(dates)-1]) && HasWindow(d.Availability, day) {
		return
	}

	d.SelectedDate = nil
	d.SelectedTime = ""
}

// CanContinue evaluates the forward predicate of the current step
func (d *BookingDraft) CanContinue() bool {
	switch d.Step {
	case StepSelectDateTime:
		return d.SelectedDate != nil && d.SelectedTime != ""
	case StepPayment, StepReview:
		return true
	default:
		return false
	}
}

// Continue moves from step 1 to 2 and from 2 to 3.
// The review step only advances through MarkSubmitted.
func (d *BookingDraft) Continue() error {
	switch d.Step {
	case StepConfirmed:
		return ErrFlowFinished
	case StepReview:
		return ErrInvalidStep
	}
	if !d.CanContinue() {
		return ErrStepIncomplete
	}
	d.Step++
	return nil
}

// Back moves from steps 2..3 to the previous step
func (d *BookingDraft) Back() error {
	switch d.Step {
	case StepPayment, StepReview:
		d.Step--
		return nil
	case StepConfirmed:
		return ErrFlowFinished
	default:
		return ErrCannotGoBack
	}
}

// MarkSubmitted stores the created session and finishes the flow
func (d *BookingDraft) MarkSubmitted(sessionID string) {
	d.SessionID = &sessionID
	d.Error = nil
	d.Step = StepConfirmed
}

// MarkFailed records a submission error. Step and selections are untouched.
func (d *BookingDraft) MarkFailed(msg string) {
	d.Error = &msg
}

// IsTerminal returns true once the session is created
func (d *BookingDraft) IsTerminal() bool {
	return d.Step == StepConfirmed
}

// EnsureIdempotencyKey returns the draft's key, generating one with gen on first use
func (d *BookingDraft) EnsureIdempotencyKey(gen func() string) string {
	if d.IdempotencyKey == "" {
		d.IdempotencyKey = gen()
	}
	return d.IdempotencyKey
}

// EffectiveTopic returns the topic or DefaultTopic when blank
func (d *BookingDraft) EffectiveTopic() string {
	if strings.TrimSpace(d.Topic) == "" {
		return DefaultTopic
	}
	return d.Topic
}

// Objectives returns [topic] for a non-blank topic, otherwise empty
func (d *BookingDraft) Objectives() []string {
	if strings.TrimSpace(d.Topic) == "" {
		return []string{}
	}
	return []string{d.Topic}
}

// ScheduledAt combines the selected date and time in loc, seconds and nanoseconds zeroed
func (d *BookingDraft) ScheduledAt(loc *time.Location) (time.Time, error) {
	if d.SelectedDate == nil || d.SelectedTime == "" {
		return time.Time{}, ErrStepIncomplete
	}
	ts, err := types.NewTimeStringFromString(d.SelectedTime)
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	return ts.On(*d.SelectedDate, loc), nil
}

// Clone returns a deep copy of the draft
func (d *BookingDraft) Clone() *BookingDraft {
	c := *d
	if d.Mentor != nil {
		m := *d.Mentor
		c.Mentor = &m
	}
	if d.Availability != nil {
		c.Availability = append([]AvailabilityWindow(nil), d.Availability...)
	}
	if d.SelectedDate != nil {
		sd := *d.SelectedDate
		c.SelectedDate = &sd
	}
	if d.SessionID != nil {
		s := *d.SessionID
		c.SessionID = &s
	}
	if d.Error != nil {
		e := *d.Error
		c.Error = &e
	}
	return &c
}
