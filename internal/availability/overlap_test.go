package availability

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	iv := func(start, end string) (time.Time, time.Time) {
		return at(base, start), at(base, end)
	}

	tests := []struct {
		name           string
		aStart, aEnd   string
		bStart, bEnd   string
		want           bool
	}{
		{"identical", "14:00", "14:30", "14:00", "14:30", true},
		{"new starts inside existing", "14:00", "15:00", "14:30", "15:30", true},
		{"new ends inside existing", "14:30", "15:30", "14:00", "15:00", true},
		{"new contains existing", "14:00", "16:00", "14:30", "15:00", true},
		{"existing contains new", "14:30", "15:00", "14:00", "16:00", true},
		{"partial quarter-hour overlap", "14:15", "14:45", "14:00", "14:30", true},
		{"adjacent before", "13:00", "14:00", "14:00", "15:00", false},
		{"adjacent after", "15:00", "16:00", "14:00", "15:00", false},
		{"disjoint", "09:00", "10:00", "14:00", "15:00", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			aS, aE := iv(tc.aStart, tc.aEnd)
			bS, bE := iv(tc.bStart, tc.bEnd)
			if got := Overlaps(aS, aE, bS, bE); got != tc.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
			// The predicate is symmetric by construction.
			if got := Overlaps(bS, bE, aS, aE); got != tc.want {
				t.Errorf("Overlaps is not symmetric for %s", tc.name)
			}
		})
	}
}

func TestClocksOverlap(t *testing.T) {
	if !ClocksOverlap(MustClock("14:00"), MustClock("14:30"), MustClock("14:15"), MustClock("14:45")) {
		t.Error("expected overlap of 14:00-14:30 with 14:15-14:45")
	}
	if ClocksOverlap(MustClock("14:00"), MustClock("14:30"), MustClock("14:30"), MustClock("15:00")) {
		t.Error("half-open intervals sharing a boundary must not overlap")
	}
}
