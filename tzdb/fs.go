package tzdb

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/ngrash/go-civil/tzif"
)

// FS returns a database reading TZif files from fsys. Zone identifiers are
// paths relative to the root of fsys, as in a zoneinfo directory.
func FS(fsys fs.FS) Database {
	return &fsDB{fsys: fsys}
}

type fsDB struct {
	fsys  fs.FS
	cache cache
}

func (db *fsDB) Load(name string) (Zone, error) {
	if z, ok := db.cache.get(name); ok {
		return z, nil
	}
	if !validName(name) || !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	info, err := fs.Stat(db.fsys, name)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, name)
	}
	if err != nil {
		return nil, fmt.Errorf("stat zone %q: %w", name, err)
	}
	b, err := fs.ReadFile(db.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read zone %q: %w", name, err)
	}
	f, err := tzif.DecodeFile(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode zone %q: %w", name, err)
	}
	z, err := tzif.Compile(f)
	if err != nil {
		return nil, fmt.Errorf("compile zone %q: %w", name, err)
	}
	slog.Debug("loaded time zone", "name", name, "source", "tzif", "version", f.Version.String())
	return db.cache.put(name, tzifZone{name: name, z: z}), nil
}

type tzifZone struct {
	name string
	z    *tzif.Zone
}

func (z tzifZone) Name() string { return z.name }

func (z tzifZone) Lookup(unix int64) Offset {
	t := z.z.Lookup(unix)
	return Offset{Seconds: t.Offset, DST: t.DST, Abbrev: t.Abbrev}
}
