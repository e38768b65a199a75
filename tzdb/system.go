package tzdb

import (
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata" // embedded IANA data; no zoneinfo files needed at runtime
)

// System returns a database backed by [time.LoadLocation]. The host's
// zoneinfo files are preferred when present; the embedded copy of the IANA
// database is used otherwise.
func System() Database {
	return &systemDB{}
}

type systemDB struct {
	cache cache
}

func (db *systemDB) Load(name string) (Zone, error) {
	if z, ok := db.cache.get(name); ok {
		return z, nil
	}
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownZone, name, err)
	}
	slog.Debug("loaded time zone", "name", name, "source", "system")
	return db.cache.put(name, locationZone{name: name, loc: loc}), nil
}

// locationZone adapts a *time.Location. Each lookup builds a fresh
// time.Time value, so no state is shared between calls.
type locationZone struct {
	name string
	loc  *time.Location
}

func (z locationZone) Name() string { return z.name }

func (z locationZone) Lookup(unix int64) Offset {
	t := time.Unix(unix, 0).In(z.loc)
	abbrev, sec := t.Zone()
	return Offset{Seconds: int32(sec), DST: t.IsDST(), Abbrev: abbrev}
}
