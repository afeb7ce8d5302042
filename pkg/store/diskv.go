// Package store persists whole collections to disk and keeps the in-memory
// item and prototype collections that the rest of the program reads.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"
)

// Collection keys. Each key addresses one whole-object archive.
const (
	KeyItems      = "items"
	KeyPrototypes = "itemPrototypes"
	KeyReminders  = "reminders"
)

// Archive is the persistence collaborator: whole-collection save and load
// addressed by key. Load leaves into untouched when nothing has been saved
// under the key yet; absence is not an error.
type Archive interface {
	Save(key string, v any) error
	Load(key string, into any) error
}

// OpenArchive creates a diskv-backed Archive rooted at the configured path.
func OpenArchive(cfg Config) (*DiskArchive, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &DiskArchive{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// Flat layout: each collection key is one file in basePath.
			Transform:    func(string) []string { return []string{} },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

// DiskArchive stores each collection as a single JSON blob under its key.
type DiskArchive struct {
	d        *diskv.Diskv
	basePath string
}

// BasePath returns the directory holding the archives.
func (a *DiskArchive) BasePath() string { return a.basePath }

func (a *DiskArchive) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := a.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (a *DiskArchive) Load(key string, into any) error {
	data, err := a.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}
