package calendar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDaysFromCivil(t *testing.T) {
	tests := []struct {
		year, month, day int
		want             int64
	}{
		{1970, 1, 1, 0},
		{1970, 1, 2, 1},
		{1969, 12, 31, -1},
		{2000, 3, 1, 11017},
		{2012, 2, 29, 15399},
		{2013, 3, 10, 15774},
		{1900, 3, 1, -25508},
		{1600, 1, 1, -135140},
		{1, 1, 1, -719162},
	}
	for _, tt := range tests {
		if got := DaysFromCivil(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("DaysFromCivil(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
		y, m, d := CivilFromDays(tt.want)
		if diff := cmp.Diff([]int{tt.year, tt.month, tt.day}, []int{y, m, d}); diff != "" {
			t.Errorf("CivilFromDays(%d) mismatch (-want +got):\n%s", tt.want, diff)
		}
	}
}

func TestCivilFromDays_RoundTrip(t *testing.T) {
	for days := int64(-800000); days <= 800000; days += 37 {
		y, m, d := CivilFromDays(days)
		if got := DaysFromCivil(y, m, d); got != days {
			t.Fatalf("DaysFromCivil(CivilFromDays(%d)) = %d (%04d-%02d-%02d)", days, got, y, m, d)
		}
	}
}

func TestFromUnix(t *testing.T) {
	tests := []struct {
		sec  int64
		want DateTime
	}{
		{0, DateTime{1970, 1, 1, 0, 0, 0}},
		{-1, DateTime{1969, 12, 31, 23, 59, 59}},
		{1362911400, DateTime{2013, 3, 10, 10, 30, 0}},
		{1328227200, DateTime{2012, 2, 3, 0, 0, 0}},
		{-2334101314, DateTime{1896, 1, 13, 22, 31, 26}},
	}
	for _, tt := range tests {
		got := FromUnix(tt.sec)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("FromUnix(%d) mismatch (-want +got):\n%s", tt.sec, diff)
		}
		if back := got.Unix(); back != tt.sec {
			t.Errorf("FromUnix(%d).Unix() = %d", tt.sec, back)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2013, 1, 31},
		{2013, 2, 28},
		{2012, 2, 29},
		{1900, 2, 28},
		{2000, 2, 29},
		{2013, 4, 30},
		{2013, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		year, month, day, want int
	}{
		{1970, 1, 1, 4},
		{1969, 12, 28, 0},
		{2013, 3, 10, 0},
		{2024, 2, 29, 4},
		{1600, 1, 1, 6},
	}
	for _, tt := range tests {
		if got := DayOfWeek(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("DayOfWeek(%d, %d, %d) = %d, want %d", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		name                    string
		year, month, n, weekday int
		want                    int
	}{
		{"second Sunday of March 2013", 2013, 3, 2, 0, 10},
		{"first Sunday of November 2013", 2013, 11, 1, 0, 3},
		{"last Sunday of October 2013", 2013, 10, 5, 0, 27},
		{"last Sunday of March 2024", 2024, 3, 5, 0, 31},
		{"fourth Thursday of March 2013", 2013, 3, 4, 4, 28},
		{"first Monday of April 2013", 2013, 4, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NthWeekdayOfMonth(tt.year, tt.month, tt.n, tt.weekday); got != tt.want {
				t.Errorf("NthWeekdayOfMonth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, div, mod int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{-1, 1000, -1, 999},
		{-1000, 1000, -1, 0},
		{0, 1000, 0, 0},
	}
	for _, tt := range tests {
		if got := FloorDiv(tt.a, tt.b); got != tt.div {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.div)
		}
		if got := FloorMod(tt.a, tt.b); got != tt.mod {
			t.Errorf("FloorMod(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.mod)
		}
	}
}
