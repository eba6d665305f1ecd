package schedule

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Step is one screen of the booking flow.
type Step string

const (
	StepDate    Step = "date"
	StepTime    Step = "time"
	StepDetails Step = "details"
)

// Trigger names an interaction that may move the flow forward or back.
type Trigger string

const (
	TriggerPickDay  Trigger = "pick_day"
	TriggerPickSlot Trigger = "pick_slot"
	TriggerBack     Trigger = "back"
)

// transitions is the single source of truth for the booking flow. Guards
// (day selectability, slot availability) are checked by the trigger methods
// before the table is consulted. Reset is allowed from any step and is not
// listed here.
var transitions = map[Step]map[Trigger]Step{
	StepDate: {
		TriggerPickDay: StepTime,
	},
	StepTime: {
		TriggerPickSlot: StepDetails,
		TriggerBack:     StepDate,
	},
	StepDetails: {
		TriggerBack: StepTime,
	},
}

// emailPattern accepts the usual local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr looks like a deliverable address.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// Selection is the single mutable date/time selection of one booking flow.
type Selection struct {
	Date *time.Time
	Time string
}

// Machine owns the three-step booking flow for one widget mount. It is not
// safe for concurrent use; a mount drives it from a single goroutine.
type Machine struct {
	hours BusinessHours
	clock func() time.Time

	step Step
	sel  Selection
}

// NewMachine creates a booking flow at the date step. clock defaults to
// time.Now and exists so tests can pin the current instant.
func NewMachine(hours BusinessHours, clock func() time.Time) *Machine {
	if clock == nil {
		clock = time.Now
	}
	return &Machine{hours: hours, clock: clock, step: StepDate}
}

// Step returns the current step.
func (m *Machine) Step() Step {
	return m.step
}

// Selection returns a copy of the current selection.
func (m *Machine) Selection() Selection {
	return m.sel
}

// PickDay selects a day and advances to the time step. Picking a new day
// always clears any previously chosen time. "Today" is judged in the
// business time zone, same as slot availability.
func (m *Machine) PickDay(d time.Time) error {
	loc, err := m.hours.Location()
	if err != nil {
		return err
	}
	if !Selectable(d, m.clock().In(loc)) {
		return fmt.Errorf("schedule: day %s is not selectable", d.Format("2006-01-02"))
	}
	next, err := m.next(TriggerPickDay)
	if err != nil {
		return err
	}
	day := dateOnly(d)
	m.sel.Date = &day
	m.sel.Time = ""
	m.step = next
	return nil
}

// PickSlot selects an enabled slot and advances to the details step.
func (m *Machine) PickSlot(slotTime string) error {
	if m.sel.Date == nil {
		return fmt.Errorf("schedule: no day selected")
	}
	slots, err := SlotsFor(*m.sel.Date, m.hours, m.clock())
	if err != nil {
		return err
	}
	var found *Slot
	for i := range slots {
		if slots[i].Time == slotTime {
			found = &slots[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("schedule: slot %q is outside business hours", slotTime)
	}
	if found.Disabled {
		return fmt.Errorf("schedule: slot %q is no longer available", slotTime)
	}
	next, err := m.next(TriggerPickSlot)
	if err != nil {
		return err
	}
	m.sel.Time = slotTime
	m.step = next
	return nil
}

// Back moves one step backwards: details to time, time to date.
func (m *Machine) Back() error {
	next, err := m.next(TriggerBack)
	if err != nil {
		return err
	}
	m.step = next
	return nil
}

// Reset returns the flow to its initial state, clearing the selection.
// Closing the widget triggers this from any step.
func (m *Machine) Reset() {
	m.step = StepDate
	m.sel = Selection{}
}

// ConfirmReady reports whether the confirm action may be enabled: details
// step, non-empty name, well-formed email, and a complete selection. Callers
// re-evaluate this on every form input event.
func (m *Machine) ConfirmReady(name, email string) bool {
	return m.step == StepDetails &&
		strings.TrimSpace(name) != "" &&
		ValidEmail(email) &&
		m.sel.Date != nil &&
		m.sel.Time != ""
}

func (m *Machine) next(tr Trigger) (Step, error) {
	next, ok := transitions[m.step][tr]
	if !ok {
		return "", fmt.Errorf("schedule: %s is not valid at step %s", tr, m.step)
	}
	return next, nil
}
