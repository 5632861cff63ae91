package util

import (
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	aliases := []string{"employee_id", "employeeId"}
	tests := []struct {
		name   string
		data   map[string]any
		want   any
		wantOK bool
	}{
		{
			name:   "legacy snake_case wins when both are set",
			data:   map[string]any{"employee_id": "E1", "employeeId": "E2"},
			want:   "E1",
			wantOK: true,
		},
		{
			name:   "falls through empty string",
			data:   map[string]any{"employee_id": "", "employeeId": "E2"},
			want:   "E2",
			wantOK: true,
		},
		{
			name:   "falls through nil",
			data:   map[string]any{"employee_id": nil, "employeeId": "E2"},
			want:   "E2",
			wantOK: true,
		},
		{
			name:   "nothing present",
			data:   map[string]any{"other": "x"},
			wantOK: false,
		},
		{
			name:   "nil map",
			data:   nil,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.data, aliases)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Lookup() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStringOr(t *testing.T) {
	data := map[string]any{"user_id": int64(42)}
	if got := StringOr(data, []string{"user_id", "userId"}, NotAvailable); got != "42" {
		t.Errorf("StringOr() = %q, want %q", got, "42")
	}
	if got := StringOr(data, []string{"missing"}, NotAvailable); got != NotAvailable {
		t.Errorf("StringOr() = %q, want %q", got, NotAvailable)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		in     any
		want   int64
		wantOK bool
	}{
		{int64(3), 3, true},
		{3, 3, true},
		{2.9, 2, true},
		{"3", 0, false},
		{nil, 0, false},
	}
	for _, tt := range tests {
		got, ok := ToInt(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ToInt(%v) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToTime(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	if got, ok := ToTime(now); !ok || !got.Equal(now) {
		t.Errorf("ToTime(time) = %v, %v", got, ok)
	}
	if _, ok := ToTime("2026-03-15"); ok {
		t.Errorf("ToTime(string) should not convert")
	}
	if _, ok := ToTime(int64(1700000000)); ok {
		t.Errorf("ToTime(int) should not convert")
	}
}

func TestDisplayDateAndTime(t *testing.T) {
	ts := time.Date(2026, 3, 5, 14, 7, 0, 0, time.UTC)
	if got := DisplayDate(&ts, time.UTC); got != "3/5/2026" {
		t.Errorf("DisplayDate = %q", got)
	}
	if got := DisplayTime(&ts, time.UTC); got != "02:07 PM" {
		t.Errorf("DisplayTime = %q", got)
	}
	if got := DisplayDate(nil, time.UTC); got != NotAvailable {
		t.Errorf("DisplayDate(nil) = %q", got)
	}
	if got := DisplayTime(nil, nil); got != NotAvailable {
		t.Errorf("DisplayTime(nil) = %q", got)
	}
}

func TestDisplayDateShiftsToLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	ts := time.Date(2026, 4, 1, 2, 0, 0, 0, time.UTC)
	if got := DisplayDate(&ts, loc); got != "3/31/2026" {
		t.Errorf("DisplayDate in UTC-5 = %q, want 3/31/2026", got)
	}
}

func TestParseDisplayDate(t *testing.T) {
	got, err := ParseDisplayDate("12/31/2025", time.UTC)
	if err != nil {
		t.Fatalf("ParseDisplayDate: %v", err)
	}
	if got.Month() != time.December || got.Day() != 31 || got.Year() != 2025 {
		t.Errorf("ParseDisplayDate = %v", got)
	}
	if _, err := ParseDisplayDate("N/A", time.UTC); err == nil {
		t.Errorf("expected error for N/A")
	}
}
