package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/centipede-arcade/internal/scoring"
)

// AppName names the gdata save area.
const AppName = "centipede_arcade"

const gdataObject = "scores"

// GDataStore keeps values in the platform save area managed by gdata
// (a per-user data directory on desktop, local storage in browsers).
type GDataStore struct {
	m *gdata.Manager
}

// OpenGData opens the save area for app. An empty app uses AppName.
func OpenGData(app string) (*GDataStore, error) {
	if app == "" {
		app = AppName
	}
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata %q: %w", app, err)
	}
	return &GDataStore{m: m}, nil
}

// Load reads key. A missing key is not an error.
func (g *GDataStore) Load(key string) ([]byte, bool, error) {
	if !g.m.ObjectPropExists(gdataObject, key) {
		return nil, false, nil
	}
	data, err := g.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot load %q: %w", key, err)
	}
	return data, true, nil
}

// Save writes key.
func (g *GDataStore) Save(key string, data []byte) error {
	if err := g.m.SaveObjectProp(gdataObject, key, data); err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", key, err)
	}
	return nil
}

var _ scoring.KeyValue = (*GDataStore)(nil)
