package booking

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    time.Time
		wantErr bool
	}{
		{name: "iso", text: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "verbose", text: "May 1, 2024", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "with time component", text: "2024-05-01T15:04:05Z", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", text: "next to never", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want error", tt.text, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.text, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDayDiff(t *testing.T) {
	got, err := DayDiff("2024-05-01", "2024-05-05")
	if err != nil {
		t.Fatalf("DayDiff: %v", err)
	}
	if got != 4 {
		t.Errorf("DayDiff = %d, want 4", got)
	}

	reversed, err := DayDiff("2024-05-05", "2024-05-01")
	if err != nil {
		t.Fatalf("DayDiff reversed: %v", err)
	}
	if reversed != 4 {
		t.Errorf("DayDiff reversed = %d, want 4", reversed)
	}

	if _, err := DayDiff("nonsense", "2024-05-01"); err == nil {
		t.Error("DayDiff with unparseable input: want error")
	}
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-05-01", 4)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	if got != "2024-05-05" {
		t.Errorf("AddDays = %q, want %q", got, "2024-05-05")
	}

	rollover, err := AddDays("2024-05-30", 4)
	if err != nil {
		t.Fatalf("AddDays rollover: %v", err)
	}
	if rollover != "2024-06-03" {
		t.Errorf("AddDays rollover = %q, want %q", rollover, "2024-06-03")
	}
}

func TestClockToday(t *testing.T) {
	// Late evening in a UTC-5 zone is already the next day in UTC; Today
	// must report the local calendar date.
	zone := time.FixedZone("UTC-5", -5*60*60)
	clock := FixedClock(time.Date(2024, 5, 1, 23, 30, 0, 0, zone))

	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := clock.Today(); !got.Equal(want) {
		t.Errorf("Today = %v, want %v", got, want)
	}
}

func TestNewClockDefaultsToUTC(t *testing.T) {
	clock := NewClock(nil)
	today := clock.Today()
	if today.Location() != time.UTC {
		t.Errorf("Today location = %v, want UTC", today.Location())
	}
	if h, m, s := today.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("Today = %v, want midnight", today)
	}
}
