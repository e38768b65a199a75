// Package tzdb provides time zone databases: sources of UTC offsets for
// IANA zone identifiers.
//
// Two databases are available. [System] is backed by the time package and
// the IANA data embedded with [time/tzdata], so it works without any files
// on disk. [FS] reads compiled TZif files, for example from a zoneinfo
// directory:
//
//	db := tzdb.FS(os.DirFS("/usr/share/zoneinfo"))
//	zone, err := db.Load("America/New_York")
//
// Databases load each zone once and cache it. Loaded zones are immutable and
// safe for concurrent use.
package tzdb

import (
	"errors"
	"strings"
	"sync"
)

// ErrUnknownZone is returned by [Database.Load] for identifiers the database
// has no data for.
var ErrUnknownZone = errors.New("unknown time zone")

// Offset is the local time type in effect at an instant.
type Offset struct {
	// Seconds is the offset east of UTC.
	Seconds int32
	// DST reports whether daylight saving time is in effect.
	DST bool
	// Abbrev is the designation, for example "PDT". It may be empty.
	Abbrev string
}

// Zone is a named time zone whose offset varies with the instant.
type Zone interface {
	// Name returns the identifier the zone was loaded under.
	Name() string
	// Lookup returns the offset in effect at the given Unix time.
	Lookup(unix int64) Offset
}

// Database loads zones by IANA identifier.
type Database interface {
	// Load returns the zone for name. Unknown names yield an error
	// wrapping ErrUnknownZone.
	Load(name string) (Zone, error)
}

var defaultDB = sync.OnceValue(func() Database { return System() })

// Default returns the process-wide database. It is the [System] database.
func Default() Database {
	return defaultDB()
}

// Fixed returns a zone with a constant offset and no daylight saving time.
func Fixed(name string, seconds int32) Zone {
	return fixedZone{name: name, off: Offset{Seconds: seconds, Abbrev: name}}
}

type fixedZone struct {
	name string
	off  Offset
}

func (z fixedZone) Name() string        { return z.name }
func (z fixedZone) Lookup(int64) Offset { return z.off }

// validName reports whether name is safe to resolve against a database:
// non-empty, relative, free of ".." elements and not the "Local" alias.
func validName(name string) bool {
	if name == "" || name == "Local" || name[0] == '/' || strings.ContainsRune(name, '\\') {
		return false
	}
	for _, elem := range strings.Split(name, "/") {
		if elem == "" || elem == "." || elem == ".." {
			return false
		}
	}
	return true
}

// cache memoizes loaded zones by name. Failed loads are not cached.
type cache struct {
	mu    sync.Mutex
	zones map[string]Zone
}

func (c *cache) get(name string) (Zone, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	z, ok := c.zones[name]
	return z, ok
}

func (c *cache) put(name string, z Zone) Zone {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.zones[name]; ok {
		return prev
	}
	if c.zones == nil {
		c.zones = make(map[string]Zone)
	}
	c.zones[name] = z
	return z
}
