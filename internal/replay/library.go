package replay

import (
	"errors"
	"fmt"

	"github.com/quasilyte/gdata"
)

// ErrNotFound is returned when no recording is saved under a name.
var ErrNotFound = errors.New("replay: recording not found")

// itemStore is the slice of gdata.Manager the library needs.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Library keeps named recordings in the per-user application data
// directory.
type Library struct {
	items itemStore
}

// OpenLibrary opens the recording library for the given application.
func OpenLibrary(appName string) (*Library, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("replay: cannot open data directory: %w", err)
	}
	return &Library{items: m}, nil
}

func itemKey(name string) string {
	return "replay_" + name
}

// Save stores a recording under name, replacing any previous one.
func (l *Library) Save(name string, r *Recording) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}
	if err := l.items.SaveItem(itemKey(name), data); err != nil {
		return fmt.Errorf("replay: cannot save %q: %w", name, err)
	}
	return nil
}

// Load reads the recording saved under name.
func (l *Library) Load(name string) (*Recording, error) {
	data, err := l.items.LoadItem(itemKey(name))
	if err != nil {
		return nil, fmt.Errorf("replay: cannot load %q: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return Unmarshal(data)
}
