package check

import (
	"errors"
	"testing"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "08:00", want: 480},
		{in: "8:05", want: 485},
		{in: "00:00", want: 0},
		{in: "23:59", want: 1439},
		{in: " 12:30 ", want: 750},
		{in: "", wantErr: true},
		{in: "8", wantErr: true},
		{in: "08:00:00", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "-1:10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClockTime(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClockTime(%q) = %d, want error", tt.in, got)
				}
				var malformed *MalformedTimeError
				if !errors.As(err, &malformed) {
					t.Fatalf("ParseClockTime(%q) error = %v, want MalformedTimeError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClockTime(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseClockTime(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify_ImmediateBoundaries(t *testing.T) {
	scheduled := 8 * 60 // 08:00

	tests := []struct {
		name string
		nowM int
		want Outcome
	}{
		{name: "07:58 is outside the window", nowM: 7*60 + 58, want: OutcomeNotYet},
		{name: "07:59 is due", nowM: 7*60 + 59, want: OutcomeDueNow},
		{name: "08:00 is due", nowM: 8 * 60, want: OutcomeDueNow},
		{name: "08:01 is due", nowM: 8*60 + 1, want: OutcomeDueNow},
		{name: "08:02 is outside the window", nowM: 8*60 + 2, want: OutcomeNotYet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(scheduled, tt.nowM, ModeImmediate); got != tt.want {
				t.Errorf("Classify(%d, %d, immediate) = %v, want %v", scheduled, tt.nowM, got, tt.want)
			}
		})
	}
}

func TestClassify_MissedBoundaries(t *testing.T) {
	scheduled := 8 * 60 // 08:00

	tests := []struct {
		name string
		nowM int
		want Outcome
	}{
		{name: "at scheduled time still pending", nowM: 8 * 60, want: OutcomeNotYet},
		{name: "08:29 still within grace", nowM: 8*60 + 29, want: OutcomeNotYet},
		{name: "08:30 exactly at grace boundary is missed", nowM: 8*60 + 30, want: OutcomeMissed},
		{name: "missed stays missed for the rest of the day", nowM: 23*60 + 59, want: OutcomeMissed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(scheduled, tt.nowM, ModeMissed); got != tt.want {
				t.Errorf("Classify(%d, %d, missed) = %v, want %v", scheduled, tt.nowM, got, tt.want)
			}
		})
	}
}

// A late-evening schedule is never carried into the next morning: comparisons
// are same-day minute arithmetic with no wraparound.
func TestClassify_NoWraparound(t *testing.T) {
	scheduled := 23*60 + 50 // 23:50

	// 00:05 "next morning" reads as minute 5 of the same day.
	if got := Classify(scheduled, 5, ModeMissed); got != OutcomeNotYet {
		t.Errorf("Classify(23:50, 00:05, missed) = %v, want %v", got, OutcomeNotYet)
	}
	if got := Classify(scheduled, 5, ModeImmediate); got != OutcomeNotYet {
		t.Errorf("Classify(23:50, 00:05, immediate) = %v, want %v", got, OutcomeNotYet)
	}
}

func TestClassify_UnknownModeNeverMatches(t *testing.T) {
	if got := Classify(480, 480, Mode("bogus")); got != OutcomeNotYet {
		t.Errorf("Classify with unknown mode = %v, want %v", got, OutcomeNotYet)
	}
}
