package availability

import (
	"reflect"
	"testing"
)

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{"two hour window", "09:00", "11:00", []string{"09:00", "09:30", "10:00", "10:30"}},
		{"single slot", "09:00", "09:30", []string{"09:00"}},
		{"uneven end excluded", "09:00", "09:45", []string{"09:00", "09:30"}},
		{"empty window", "09:00", "09:00", nil},
		{"inverted window", "11:00", "09:00", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots := GenerateSlots(MustClock(tc.start), MustClock(tc.end))
			var got []string
			for _, s := range slots {
				got = append(got, s.String())
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("GenerateSlots(%s, %s) = %v, want %v", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("14:30")
	if err != nil {
		t.Fatal(err)
	}
	if c != 14*60+30 {
		t.Errorf("ParseClock(14:30) = %d", c)
	}
	if c.String() != "14:30" {
		t.Errorf("String() = %q", c.String())
	}

	for _, bad := range []string{"25:00", "9:0x", "nope", "14:60"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) succeeded, want error", bad)
		}
	}
}
