package tz

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ngrash/go-civil/tzdb"
	"github.com/ngrash/go-civil/tzif"
)

func TestParse_Identified(t *testing.T) {
	for _, name := range []string{
		"America/New_York",
		"Pacific/Apia",
		"Pacific/Kosrae",
		"Indian/Mahe",
		"Europe/Isle_of_Man",
		"Australia/Lord_Howe",
		"Atlantic/Madeira",
		"Asia/Dhaka",
		"Arctic/Longyearbyen",
		"Antarctica/Palmer",
		"Africa/Djibouti",
		"America/Port-au-Prince",
		"Etc/GMT+5",
	} {
		t.Run(name, func(t *testing.T) {
			z, err := Parse(name)
			require.NoError(t, err)
			assert.Equal(t, Identified, z.Kind())
			assert.Equal(t, name, z.Name())

			z, err = ParseIdentified(name)
			require.NoError(t, err)
			assert.Equal(t, name, z.Name())

			_, err = ParseOffset(name)
			assert.ErrorIs(t, err, ErrInvalidZone)
		})
	}
}

func TestParse_Offset(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		seconds int32
	}{
		{"+0400", "+04:00", 14400},
		{"-0400", "-04:00", -14400},
		{"+1234", "+12:34", 45240},
		{"-1929", "-19:29", -70140},
		{"+12:44", "+12:44", 45840},
		{"-00:12", "-00:12", -720},
		{"+5", "+05:00", 18000},
		{"-09", "-09:00", -32400},
		{"+0:30", "+00:30", 1800},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			z, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, FixedOffset, z.Kind())
			assert.Equal(t, tt.name, z.Name())
			assert.Equal(t, tt.seconds, z.UTCOffset(0))
			assert.Equal(t, tt.seconds, z.UTCOffset(1362898800))

			z, err = ParseOffset(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.name, z.Name())

			_, err = ParseIdentified(tt.in)
			assert.ErrorIs(t, err, ErrInvalidZone)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"blah",
		"123",
		"1970 bloop UTC",
		"2013 UTC",
		"2013-05-06 01:55:21 America/New_York",
		"America/Nowhere",
		"America/New_York ",
		"../America/New_York",
		"Local",
		"+2400",
		"+05:60",
		"+12345",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrInvalidZone)
		})
	}
}

func TestParse_Abbreviations(t *testing.T) {
	for _, in := range []string{"EST", "EDT", "BOT", "AZOST", "MST", "YAKST", "PDT"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrInvalidZone)
			assert.Contains(t, err.Error(), "abbreviations")
		})
	}
}

func TestUTC(t *testing.T) {
	for _, in := range []string{"UTC", "utc", "Utc"} {
		z, err := Parse(in)
		require.NoError(t, err)
		assert.Same(t, UTC(), z, "Parse(%q)", in)

		z, err = ParseIdentified(in)
		require.NoError(t, err)
		assert.Same(t, UTC(), z, "ParseIdentified(%q)", in)
	}
	assert.Equal(t, Identified, UTC().Kind())
	assert.Equal(t, "UTC", UTC().Name())
	assert.Equal(t, int32(0), UTC().UTCOffset(1362898800))
	assert.True(t, UTC().IsUTC())

	_, err := ParseOffset("UTC")
	assert.ErrorIs(t, err, ErrInvalidZone)
}

func TestUTC_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*TimeZone, 16)
	for i := range got {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = UTC()
		}()
	}
	wg.Wait()
	for i := range got {
		assert.Same(t, got[0], got[i])
	}
}

func TestOffsetUTC(t *testing.T) {
	z, err := OffsetUTC()
	assert.Nil(t, z)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestNilZone(t *testing.T) {
	var z *TimeZone
	assert.Equal(t, "UTC", z.Name())
	assert.True(t, z.Equal(UTC()))
	assert.True(t, UTC().Equal(nil))
	assert.True(t, (&TimeZone{}).Equal(nil))
	assert.Equal(t, int32(0), z.UTCOffset(1362898800))
}

func TestEqual(t *testing.T) {
	mustParse := func(s string) *TimeZone {
		t.Helper()
		z, err := Parse(s)
		require.NoError(t, err)
		return z
	}
	tests := []struct {
		a, b string
		want bool
	}{
		{"+0500", "+05:00", true},
		{"America/New_York", "America/New_York", true},
		{"UTC", "utc", true},
		{"America/New_York", "America/Chicago", false},
		{"-05:00", "America/New_York", false},
		{"+00:00", "UTC", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mustParse(tt.a).Equal(mustParse(tt.b)), "%s == %s", tt.a, tt.b)
	}
}

func TestUTCOffset(t *testing.T) {
	ny, err := Parse("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, int32(-18000), ny.UTCOffset(1362891600))
	assert.Equal(t, int32(-14400), ny.UTCOffset(1362898800))

	off := ny.Lookup(1362898800)
	assert.Equal(t, tzdb.Offset{Seconds: -14400, DST: true, Abbrev: "EDT"}, off)
}

func TestFixed(t *testing.T) {
	z, err := Fixed(-34200)
	require.NoError(t, err)
	assert.Equal(t, "-09:30", z.Name())
	assert.Equal(t, int32(-34200), z.UTCOffset(0))

	_, err = Fixed(24 * 3600)
	assert.ErrorIs(t, err, ErrInvalidZone)
}

func TestLocation(t *testing.T) {
	tests := []struct {
		zone string
		loc  string
	}{
		{"UTC", "UTC"},
		{"America/New_York", "America/New_York"},
		{"+05:30", "+05:30"},
	}
	for _, tt := range tests {
		z, err := Parse(tt.zone)
		require.NoError(t, err)
		loc, err := z.Location()
		require.NoError(t, err)
		assert.Equal(t, tt.loc, loc.String())

		back, err := FromLocation(loc)
		require.NoError(t, err)
		assert.True(t, z.Equal(back), "FromLocation(%s) = %s", loc, back)
	}

	_, err := FromLocation(time.Local)
	assert.ErrorIs(t, err, ErrInvalidZone)

	z, err := FromLocation(nil)
	require.NoError(t, err)
	assert.Same(t, UTC(), z)
}

func TestParseIn(t *testing.T) {
	block := tzif.DataBlock{
		LocalTimeTypeRecord: []tzif.LocalTimeTypeRecord{{Utoff: 3600, Idx: 0}},
		TimeZoneDesignation: []byte("XST\x00"),
	}
	var buf bytes.Buffer
	require.NoError(t, tzif.NewFile(tzif.V2, block, "XST-1").Encode(&buf))
	db := tzdb.FS(fstest.MapFS{"Test/Zone": {Data: buf.Bytes()}})

	z, err := ParseIn(db, "Test/Zone")
	require.NoError(t, err)
	assert.Equal(t, int32(3600), z.UTCOffset(0))

	_, err = ParseIn(db, "America/New_York")
	assert.ErrorIs(t, err, ErrInvalidZone)
	assert.ErrorIs(t, err, tzdb.ErrUnknownZone)
}

func TestEncoding(t *testing.T) {
	type config struct {
		Zone  *TimeZone `yaml:"zone" json:"zone"`
		Other *TimeZone `yaml:"other" json:"other"`
	}

	var c config
	require.NoError(t, yaml.Unmarshal([]byte("zone: America/Los_Angeles\nother: \"+0530\"\n"), &c))
	assert.Equal(t, "America/Los_Angeles", c.Zone.Name())
	assert.Equal(t, "+05:30", c.Other.Name())

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	if diff := cmp.Diff("zone: America/Los_Angeles\nother: \"+05:30\"\n", string(out)); diff != "" {
		t.Errorf("yaml.Marshal() mismatch (-want +got):\n%s", diff)
	}

	js, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"zone":"America/Los_Angeles","other":"+05:30"}`, string(js))

	var back config
	require.NoError(t, json.Unmarshal(js, &back))
	assert.True(t, c.Zone.Equal(back.Zone))
	assert.True(t, c.Other.Equal(back.Other))

	err = yaml.Unmarshal([]byte("zone: EST\n"), &c)
	assert.ErrorIs(t, err, ErrInvalidZone)
	err = yaml.Unmarshal([]byte("zone: [a, b]\n"), &c)
	assert.ErrorIs(t, err, ErrInvalidZone)
}
