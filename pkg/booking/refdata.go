// Package booking implements the slot-validation, pricing and
// dialog-state-transition core of the tripdesk fulfillment hook. Every
// operation is a pure function of the turn payload, the reference catalog
// and the injected clock.
package booking

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/xid"
	"gopkg.in/yaml.v3"
)

//go:embed refdata.yaml
var defaultRefData []byte

// Catalog is the immutable reference data shared by validators and pricing:
// supported cities, room types, and the two car-type tables. CarTypes is
// the validity list (it includes Spanish synonyms); CarClasses is the
// pricing rank list. A type valid but unranked prices at rank 0.
type Catalog struct {
	Cities     []string `yaml:"cities"`
	RoomTypes  []string `yaml:"room_types"`
	CarTypes   []string `yaml:"car_types"`
	CarClasses []string `yaml:"car_classes"`
}

// Validate checks the catalog for the minimum shape the validators and
// pricing tables rely on.
func (c *Catalog) Validate() error {
	if len(c.Cities) == 0 {
		return fmt.Errorf("catalog: cities list is empty")
	}
	if len(c.RoomTypes) == 0 {
		return fmt.Errorf("catalog: room_types list is empty")
	}
	if len(c.CarTypes) == 0 {
		return fmt.Errorf("catalog: car_types list is empty")
	}
	if len(c.CarClasses) == 0 {
		return fmt.Errorf("catalog: car_classes list is empty")
	}
	return nil
}

func containsFold(list []string, v string) bool {
	v = strings.ToLower(v)
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ValidCity reports membership in the supported city list, ignoring case.
func (c *Catalog) ValidCity(name string) bool {
	return containsFold(c.Cities, name)
}

// ValidRoomType reports membership in the room type list, ignoring case.
func (c *Catalog) ValidRoomType(name string) bool {
	return containsFold(c.RoomTypes, name)
}

// ValidCarType reports membership in the car-type validity list, ignoring
// case. Spanish synonyms are accepted here even though they carry no
// pricing rank.
func (c *Catalog) ValidCarType(name string) bool {
	return containsFold(c.CarTypes, name)
}

// RoomTypeRank returns the 0-based position of the room type in the room
// type table, or 0 when absent. Callers validate membership first.
func (c *Catalog) RoomTypeRank(name string) int {
	name = strings.ToLower(name)
	for i, rt := range c.RoomTypes {
		if rt == name {
			return i
		}
	}
	return 0
}

// CarClassRank returns the 0-based position of the car type in the pricing
// rank table. Types absent from the table rank 0, so unrecognized types and
// the Spanish synonyms price as economy.
func (c *Catalog) CarClassRank(name string) int {
	name = strings.ToLower(name)
	for i, ct := range c.CarClasses {
		if ct == name {
			return i
		}
	}
	return 0
}

// CatalogSource provides the current catalog to validators and handlers.
type CatalogSource interface {
	Catalog() *Catalog
}

// Loader serves the reference catalog: the embedded defaults, optionally
// overridden by YAML files in a configured directory, with hot reload.
type Loader struct {
	dir string

	mu       sync.RWMutex
	catalog  *Catalog
	revision string
}

// NewLoader creates a loader. With an empty dir the embedded defaults are
// used and Load is a no-op beyond parsing them.
func NewLoader(dir string) (*Loader, error) {
	var cat Catalog
	if err := yaml.Unmarshal(defaultRefData, &cat); err != nil {
		return nil, fmt.Errorf("parse embedded refdata: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &Loader{
		dir:      dir,
		catalog:  &cat,
		revision: xid.New().String(),
	}, nil
}

// Load re-reads the override directory, if any. The last file in lexical
// order wins. A load failure leaves the current catalog in place.
func (l *Loader) Load() error {
	if l.dir == "" {
		return nil
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return fmt.Errorf("read refdata dir %q: %w", l.dir, err)
	}

	var loaded *Catalog
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(l.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}

		var cat Catalog
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return fmt.Errorf("parse %q: %w", path, err)
		}
		if err := cat.Validate(); err != nil {
			return fmt.Errorf("%q: %w", path, err)
		}
		loaded = &cat
	}

	if loaded == nil {
		return nil
	}

	l.mu.Lock()
	l.catalog = loaded
	l.revision = xid.New().String()
	l.mu.Unlock()

	return nil
}

// Catalog returns the current catalog.
func (l *Loader) Catalog() *Catalog {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.catalog
}

// Revision identifies the currently loaded catalog; it changes on every
// successful reload.
func (l *Loader) Revision() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.revision
}

// WatchAndReload watches the override directory for changes and reloads.
// This blocks until the done channel is closed. It is a no-op without an
// override directory.
func (l *Loader) WatchAndReload(done <-chan struct{}) error {
	if l.dir == "" {
		<-done
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(l.dir); err != nil {
		return fmt.Errorf("watch dir %q: %w", l.dir, err)
	}

	for {
		select {
		case <-done:
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				ext := filepath.Ext(event.Name)
				if ext == ".yaml" || ext == ".yml" {
					l.Load()
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
