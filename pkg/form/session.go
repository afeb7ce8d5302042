// Package form holds the new-item edit session: a two-way binding between
// one absolute expiration date field and three day/month/year counters.
package form

import (
	"errors"
	"time"

	"github.com/calderalabs/bestbefore/pkg/item"
	"github.com/calderalabs/bestbefore/pkg/store"
	"github.com/calderalabs/bestbefore/pkg/timeutil"
)

// ErrNotEligible is returned by Commit when the session is missing a name or
// an expiration date. Callers gate on CanSave and should never see it.
var ErrNotEligible = errors.New("form: name and expiration date are required")

// State identifies which direction of the date/interval binding is being
// recomputed. Outside of a setter the session is always Idle.
type State int

const (
	Idle State = iota
	EditingAbsoluteDate
	EditingInterval
)

// Field names a session field for change notifications.
type Field int

const (
	FieldName Field = iota
	FieldDate
	FieldDays
	FieldMonths
	FieldYears
	FieldPicture
	FieldBarcode
)

// Session is one new-item edit. Editing the date recomputes the three
// interval counters; editing any counter recomputes the date from all three.
// The state field doubles as the re-entrancy guard: a setter invoked while a
// recomputation is writing fields back returns immediately, which is what
// keeps the two directions from oscillating.
type Session struct {
	clock      timeutil.Clock
	prototypes *store.Prototypes

	state State

	name     string
	picture  []byte
	barcode  string
	date     *time.Time
	interval timeutil.Interval

	// OnFieldChange, when set, observes every field write, including the
	// ones a recomputation performs.
	OnFieldChange func(Field)
}

// NewSession starts an edit session. prototypes may be nil when no barcode
// pre-fill is wanted.
func NewSession(prototypes *store.Prototypes, clock timeutil.Clock) *Session {
	if clock == nil {
		clock = timeutil.SystemClock{}
	}
	return &Session{clock: clock, prototypes: prototypes}
}

// State reports the current edit direction.
func (s *Session) State() State { return s.state }

// Name returns the name field.
func (s *Session) Name() string { return s.name }

// SetName updates the name field.
func (s *Session) SetName(name string) {
	s.name = name
	s.notify(FieldName)
}

// Picture returns the captured picture bytes, if any.
func (s *Session) Picture() []byte { return s.picture }

// ApplyPicture records a captured image. The bytes are opaque.
func (s *Session) ApplyPicture(blob []byte) {
	s.picture = blob
	s.notify(FieldPicture)
}

// Barcode returns the barcode associated with this session, if any.
func (s *Session) Barcode() string { return s.barcode }

// Date returns the absolute date field, nil when unset.
func (s *Session) Date() *time.Time {
	return s.date
}

// Interval returns the current day/month/year counters.
func (s *Session) Interval() timeutil.Interval { return s.interval }

// MinDate is the floor of the date field: tomorrow, start of day. An
// expiration can never be set to today or earlier, and an empty date field
// defaults to this on blur.
func (s *Session) MinDate() time.Time {
	return timeutil.StartOfDay(s.clock.Now()).AddDate(0, 0, 1)
}

// SetDate updates the absolute date field, clamping to MinDate, and
// recomputes the three interval counters. A re-entrant call is a no-op.
func (s *Session) SetDate(t time.Time) {
	if s.state != Idle {
		return
	}
	s.state = EditingAbsoluteDate
	defer func() { s.state = Idle }()

	clamped := timeutil.StartOfDay(t)
	if floor := s.MinDate(); clamped.Before(floor) {
		clamped = floor
	}
	s.date = &clamped
	s.notify(FieldDate)

	s.interval = timeutil.IntervalUntil(clamped, s.clock.Now())
	s.notify(FieldDays)
	s.notify(FieldMonths)
	s.notify(FieldYears)
}

// ClearDate empties the date field, as when the user deletes its contents.
// Callers emulating a blur on the empty field follow with SetDate(MinDate).
func (s *Session) ClearDate() {
	if s.state != Idle {
		return
	}
	s.date = nil
	s.notify(FieldDate)
}

// SetDays updates the days counter. nil means the field was emptied, which
// converts the same as zero.
func (s *Session) SetDays(v *int) {
	s.setCounter(FieldDays, func(iv *timeutil.Interval) { iv.Days = nonNegative(v) })
}

// SetMonths updates the months counter.
func (s *Session) SetMonths(v *int) {
	s.setCounter(FieldMonths, func(iv *timeutil.Interval) { iv.Months = nonNegative(v) })
}

// SetYears updates the years counter.
func (s *Session) SetYears(v *int) {
	s.setCounter(FieldYears, func(iv *timeutil.Interval) { iv.Years = nonNegative(v) })
}

// nonNegative normalizes a counter write. The counters never go below zero;
// a negative value, reachable from a raw flag, counts as emptying the field.
// Letting it through would recompute a date under the MinDate floor.
func nonNegative(v *int) *int {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}

// setCounter applies one counter edit and recomputes the absolute date from
// the current values of all three counters, not just the edited one.
func (s *Session) setCounter(changed Field, apply func(*timeutil.Interval)) {
	if s.state != Idle {
		return
	}
	s.state = EditingInterval
	defer func() { s.state = Idle }()

	apply(&s.interval)
	s.notify(changed)

	d := s.interval.Date(s.clock.Now())
	s.date = &d
	s.notify(FieldDate)
}

// ApplyBarcode records a scanned barcode. A known barcode pre-fills the
// name, picture, and date fields from its prototype (date is today plus the
// prototype's shelf life) and re-runs the interval recomputation; an unknown
// one is only remembered for prototype creation on commit.
func (s *Session) ApplyBarcode(code string) {
	s.barcode = code
	s.notify(FieldBarcode)

	if s.prototypes == nil {
		return
	}
	p, ok := s.prototypes.Lookup(code)
	if !ok {
		return
	}

	s.name = p.Name
	s.notify(FieldName)
	if len(p.Picture) > 0 {
		s.picture = p.Picture
		s.notify(FieldPicture)
	}
	s.SetDate(s.clock.Now().Add(p.Interval))
}

// CanSave reports whether a commit is enabled: the name field is non-empty
// and the date field holds a value.
func (s *Session) CanSave() bool {
	return s.name != "" && s.date != nil
}

// Commit produces the new item and, when a barcode is associated with the
// session, upserts a prototype recording the product's shelf life from
// today. The returned prototype is nil when no barcode was captured.
func (s *Session) Commit() (*item.Item, *item.Prototype, error) {
	if !s.CanSave() {
		return nil, nil, ErrNotEligible
	}

	expiresAt := timeutil.StartOfDay(*s.date)
	it := item.New(s.name, s.picture, expiresAt, s.barcode)

	var proto *item.Prototype
	if s.barcode != "" {
		proto = &item.Prototype{
			Name:     s.name,
			Picture:  s.picture,
			Interval: expiresAt.Sub(timeutil.StartOfDay(s.clock.Now())),
			Barcode:  s.barcode,
		}
		if s.prototypes != nil {
			s.prototypes.Upsert(*proto)
		}
	}

	return it, proto, nil
}

func (s *Session) notify(f Field) {
	if s.OnFieldChange != nil {
		s.OnFieldChange(f)
	}
}
