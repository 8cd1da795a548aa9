package check

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which classification predicate a check run applies.
type Mode string

const (
	// ModeImmediate matches medications whose scheduled time is right now,
	// within a +/-1 minute tolerance. Polled every minute this fires for at
	// most ~3 consecutive minutes, so delivery is at-least-once by design.
	ModeImmediate Mode = "immediate"

	// ModeMissed matches medications whose grace period has elapsed. Once
	// past due the dose stays missed for the rest of the day; only a taken
	// log (which removes it from the candidate set) stops repeat alerts.
	ModeMissed Mode = "missed"
)

// Outcome is the classification of one medication against the current time.
type Outcome string

const (
	OutcomeDueNow Outcome = "due-now"
	OutcomeMissed Outcome = "missed"
	OutcomeNotYet Outcome = "not-yet"
)

const (
	// ReminderToleranceMinutes is the one-sided width of the due-now window.
	ReminderToleranceMinutes = 1

	// GracePeriodMinutes is how long after the scheduled time a dose may
	// still be taken before it is classified as missed.
	GracePeriodMinutes = 30
)

// MalformedTimeError reports a schedule time that does not parse as a
// 24-hour "HH:MM" clock time. Records carrying one are excluded from
// classification instead of failing the whole run.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed schedule time %q: expected HH:MM", e.Value)
}

// ParseClockTime converts a "HH:MM" (or "H:MM") time-of-day string into
// minutes since midnight.
func ParseClockTime(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 3)
	if len(parts) != 2 {
		return 0, &MalformedTimeError{Value: s}
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, &MalformedTimeError{Value: s}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, &MalformedTimeError{Value: s}
	}
	return h*60 + m, nil
}

// Classify compares a scheduled time against the current time, both as
// minutes since midnight, under the given mode. All arithmetic is same-day:
// there is no wraparound, so a schedule effectively expires at day rollover.
func Classify(scheduledM, nowM int, mode Mode) Outcome {
	switch mode {
	case ModeImmediate:
		diff := nowM - scheduledM
		if diff < 0 {
			diff = -diff
		}
		if diff <= ReminderToleranceMinutes {
			return OutcomeDueNow
		}
		return OutcomeNotYet
	case ModeMissed:
		if nowM >= scheduledM+GracePeriodMinutes {
			return OutcomeMissed
		}
		return OutcomeNotYet
	default:
		return OutcomeNotYet
	}
}

// target is the outcome a mode selects for dispatch.
func (m Mode) target() Outcome {
	if m == ModeMissed {
		return OutcomeMissed
	}
	return OutcomeDueNow
}
