package datefmt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// losAngeles is 2013-03-10 03:30:00 PDT, the first hour of daylight saving
// time in America/Los_Angeles.
var losAngeles = Value{
	Year: 2013, Month: 3, Day: 10,
	Hour: 3, Minute: 30, Second: 0,
	Offset: -25200,
	DST:    true,
	Zone:   "America/Los_Angeles",
	Abbrev: "PDT",
	Unix:   1362911400,
}

func TestFormat(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"Y-m-d H:i:s", "2013-03-10 03:30:00"},
		{"r", "Sun, 10 Mar 2013 03:30:00 -0700"},
		{"c", "2013-03-10T03:30:00-07:00"},
		{"l jS F Y", "Sunday 10th March 2013"},
		{"D, d-M-y", "Sun, 10-Mar-13"},
		{"N w z W o L t", "7 0 68 10 2013 0 31"},
		{"g:i a|h:i A|G", "3:30 am|03:30 AM|3"},
		{"e I T Z P p O U", "America/Los_Angeles 1 PDT -25200 -07:00 -07:00 -0700 1362911400"},
		{`\Y\-m \\ \n`, `Y-03 \ n`},
		{"u v", "000000 000"},
		{"", ""},
		{"-- :: ++", "-- :: ++"},
	}
	for _, tt := range tests {
		got, err := Format(losAngeles, tt.pattern)
		if err != nil {
			t.Errorf("Format(%q) failed: %v", tt.pattern, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Format(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
		}
	}
}

func TestFormat_Fields(t *testing.T) {
	tests := []struct {
		name    string
		value   Value
		pattern string
		want    string
	}{
		{"micros", Value{Year: 2013, Month: 1, Day: 1, Micros: 123456}, "u v", "123456 123"},
		{"afternoon", Value{Year: 2013, Month: 1, Day: 1, Hour: 15}, "g h G H a A", "3 03 15 15 pm PM"},
		{"midnight", Value{Year: 2013, Month: 1, Day: 1}, "g h a", "12 12 am"},
		{"noon", Value{Year: 2013, Month: 1, Day: 1, Hour: 12}, "g a", "12 pm"},
		{"utc", Value{Year: 1970, Month: 1, Day: 1, Zone: "UTC", Abbrev: "UTC"}, "e T O P p Z U", "UTC UTC +0000 +00:00 Z 0 0"},
		{"east", Value{Year: 2013, Month: 1, Day: 1, Offset: 19800}, "O P p", "+0530 +05:30 +05:30"},
		{"lmt", Value{Year: 1883, Month: 1, Day: 1, Offset: -17762}, "O P", "-0456 -04:56"},
		{"leap day", Value{Year: 2000, Month: 2, Day: 29}, "D N z t L", "Tue 2 59 29 1"},
		{"last day of leap year", Value{Year: 2020, Month: 12, Day: 31}, "z W o", "365 53 2020"},
		{"iso year before", Value{Year: 2010, Month: 1, Day: 3}, "W o Y", "53 2009 2010"},
		{"iso year after", Value{Year: 2008, Month: 12, Day: 29}, "W o Y", "01 2009 2008"},
		{"iso week 52", Value{Year: 2012, Month: 1, Day: 1}, "W o", "52 2011"},
		{"small year", Value{Year: 5, Month: 1, Day: 1}, "Y y", "0005 05"},
		{"negative year", Value{Year: -55, Month: 1, Day: 1}, "Y y", "-0055 45"},
		{"large year", Value{Year: 10191, Month: 1, Day: 1}, "Y", "10191"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(tt.value, tt.pattern)
			if err != nil {
				t.Fatalf("Format(%q) failed: %v", tt.pattern, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Format(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestFormat_OrdinalSuffix(t *testing.T) {
	want := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 23: "23rd", 30: "30th", 31: "31st",
	}
	for day, w := range want {
		got, err := Format(Value{Year: 2013, Month: 1, Day: day}, "jS")
		if err != nil {
			t.Fatalf("Format() failed: %v", err)
		}
		if got != w {
			t.Errorf("Format(day %d) = %q, want %q", day, got, w)
		}
	}
}

func TestFormat_Invalid(t *testing.T) {
	for _, pattern := range []string{"Y-m-d K", `Y\`, "x", "B", "Q"} {
		if _, err := Format(losAngeles, pattern); !errors.Is(err, ErrFormat) {
			t.Errorf("Format(%q) error = %v, want ErrFormat", pattern, err)
		}
	}
}

func TestParse(t *testing.T) {
	const date = FieldYear | FieldMonth | FieldDay
	tests := []struct {
		text    string
		pattern string
		want    Parsed
	}{
		{
			"2013-03-10 03:30 America/Los_Angeles", "Y-m-d H:i e",
			Parsed{Year: 2013, Month: 3, Day: 10, Hour: 3, Minute: 30, Zone: "America/Los_Angeles", Fields: date | FieldHour | FieldMinute | FieldZone},
		},
		{
			"2013-05-11 12:00:00-09:00", "Y-m-d G:i:sP",
			Parsed{Year: 2013, Month: 5, Day: 11, Hour: 12, Zone: "-09:00", Fields: date | FieldHour | FieldMinute | FieldSecond | FieldZone},
		},
		{
			"02:2012:03", "m:Y:d",
			Parsed{Year: 2012, Month: 2, Day: 3, Fields: date},
		},
		{
			"UTC", "e",
			Parsed{Zone: "UTC", Fields: FieldZone},
		},
		{
			"Sunday, 10-Mar-13 03:30:00 PDT", "l, d-M-y H:i:s T",
			Parsed{Year: 2013, Month: 3, Day: 10, Hour: 3, Minute: 30, Zone: "PDT", Fields: date | FieldHour | FieldMinute | FieldSecond | FieldZone},
		},
		{
			"2013-03-10T03:30:00.5Z", `Y-m-d\TH:i:s.up`,
			Parsed{Year: 2013, Month: 3, Day: 10, Hour: 3, Minute: 30, Micros: 500000, Zone: "UTC", Fields: date | FieldHour | FieldMinute | FieldSecond | FieldMicros | FieldZone},
		},
		{
			"2013-03-10T03:30:00.000042Z", `Y-m-d\TH:i:s.u\Z`,
			Parsed{Year: 2013, Month: 3, Day: 10, Hour: 3, Minute: 30, Micros: 42, Fields: date | FieldHour | FieldMinute | FieldSecond | FieldMicros},
		},
		{
			"12.345", "s.v",
			Parsed{Second: 12, Micros: 345000, Fields: FieldSecond | FieldMicros},
		},
		{
			"1362911400", "U",
			Parsed{Unix: 1362911400, Fields: FieldUnix},
		},
		{
			"-1", "U",
			Parsed{Unix: -1, Fields: FieldUnix},
		},
		{
			"3:05 pm", "g:i a",
			Parsed{Hour: 15, Minute: 5, Fields: FieldHour | FieldMinute},
		},
		{
			"12:00 am", "h:i a",
			Parsed{Hour: 0, Fields: FieldHour | FieldMinute},
		},
		{
			"12:00 PM", "h:i A",
			Parsed{Hour: 12, Fields: FieldHour | FieldMinute},
		},
		{
			"March 5, 99", "F j, y",
			Parsed{Year: 1999, Month: 3, Day: 5, Fields: date},
		},
		{
			"05", "y",
			Parsed{Year: 2005, Fields: FieldYear},
		},
		{
			"-0400", "O",
			Parsed{Zone: "-0400", Fields: FieldZone},
		},
		{
			"2013 +5", "Y O",
			Parsed{Year: 2013, Zone: "+5", Fields: FieldYear | FieldZone},
		},
		{
			"2012-02-30", "Y-m-d",
			Parsed{Year: 2012, Month: 2, Day: 30, Fields: date},
		},
		{
			"10000-01-01", "Y-m-d",
			Parsed{Year: 10000, Month: 1, Day: 1, Fields: date},
		},
		{
			"+292277026596-12-04", "Y-m-d",
			Parsed{Year: 292277026596, Month: 12, Day: 4, Fields: date},
		},
		{
			"-0001-01-01", "Y-m-d",
			Parsed{Year: -1, Month: 1, Day: 1, Fields: date},
		},
		{
			"20130310", "Ymd",
			Parsed{Year: 2013, Month: 3, Day: 10, Fields: date},
		},
	}
	for _, tt := range tests {
		got, err := Parse(tt.text, tt.pattern)
		if err != nil {
			t.Errorf("Parse(%q, %q) failed: %v", tt.text, tt.pattern, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Parse(%q, %q) mismatch (-want +got):\n%s", tt.text, tt.pattern, diff)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		text    string
		pattern string
	}{
		{"2013-03", "Y-m-d"},
		{"2013-03-10x", "Y-m-d"},
		{"ab", "Y"},
		{"2013x", "YK"},
		{"13:00 pm", "G:i a"},
		{"10:5", "H:i"},
		{"2013", `Y\`},
		{"Funday", "l"},
		{"Mar", "D"},
		{"2013-03-10 ", "Y-m-d e"},
		{"2013-03-10 +", "Y-m-d P"},
		{"12345678901234567890", "U"},
		{"2013/03/10", "Y-m-d"},
		{"10 xm", "g a"},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.text, tt.pattern); !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q, %q) error = %v, want ErrFormat", tt.text, tt.pattern, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, pattern := range []string{
		"Y-m-d H:i:s",
		`Y-m-d\TH:i:s.u\Z`,
		"l, d-M-y H:i:s T",
		"D, d M Y H:i:s O",
		"U",
	} {
		text, err := Format(losAngeles, pattern)
		if err != nil {
			t.Fatalf("Format(%q) failed: %v", pattern, err)
		}
		got, err := Parse(text, pattern)
		if err != nil {
			t.Fatalf("Parse(%q, %q) failed: %v", text, pattern, err)
		}
		if got.Has(FieldYear|FieldMonth|FieldDay) && (got.Year != 2013 || got.Month != 3 || got.Day != 10) {
			t.Errorf("Parse(%q) date = %d-%d-%d, want 2013-3-10", text, got.Year, got.Month, got.Day)
		}
		if got.Has(FieldHour|FieldMinute) && (got.Hour != 3 || got.Minute != 30) {
			t.Errorf("Parse(%q) time = %d:%d, want 3:30", text, got.Hour, got.Minute)
		}
		if got.Has(FieldUnix) && got.Unix != losAngeles.Unix {
			t.Errorf("Parse(%q) unix = %d, want %d", text, got.Unix, losAngeles.Unix)
		}
	}
}
