// Package catalog loads and indexes the static exercise catalog: a JSON
// mapping from muscle-group name to an ordered list of exercise entries.
// The catalog is read-only reference data; nothing in this package
// mutates it after Load.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/claude/fitlog/internal/models"
)

// Entry is one exercise record in the catalog. Intensity and
// EquipmentNeeded are optional in the file; a missing intensity means
// medium.
type Entry struct {
	Name              string   `json:"name"`
	DurationMin       int      `json:"duration"`
	CaloriesPerMinute float64  `json:"calories_burned_per_minute"`
	Intensity         string   `json:"intensity,omitempty"`
	EquipmentNeeded   []string `json:"equipment_needed,omitempty"`
}

// Catalog indexes entries by normalized muscle-group key while keeping
// the per-group entry order from the file.
type Catalog struct {
	groups map[string][]Entry
	names  map[string]string // normalized key -> display name
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	cat, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes a catalog from r and validates every entry. A malformed
// entry fails the whole load; the catalog is trusted reference data and a
// bad record in it is a data bug worth surfacing at startup.
func Parse(r io.Reader) (*Catalog, error) {
	var raw map[string][]Entry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding catalog JSON: %w", err)
	}

	cat := &Catalog{
		groups: make(map[string][]Entry, len(raw)),
		names:  make(map[string]string, len(raw)),
	}
	for group, entries := range raw {
		key := models.NormalizeKey(group)
		if key == "" {
			return nil, fmt.Errorf("empty muscle-group name")
		}
		for _, e := range entries {
			if err := e.validate(); err != nil {
				return nil, fmt.Errorf("group %q, entry %q: %w", group, e.Name, err)
			}
		}
		cat.groups[key] = append(cat.groups[key], entries...)
		if _, ok := cat.names[key]; !ok {
			cat.names[key] = group
		}
	}
	return cat, nil
}

func (e Entry) validate() error {
	if e.Name == "" {
		return fmt.Errorf("missing name")
	}
	if e.DurationMin <= 0 {
		return fmt.Errorf("duration %d is not positive", e.DurationMin)
	}
	if e.CaloriesPerMinute <= 0 {
		return fmt.Errorf("calories_burned_per_minute %g is not positive", e.CaloriesPerMinute)
	}
	if e.Intensity != "" {
		if _, err := models.ParseIntensity(e.Intensity); err != nil {
			return err
		}
	}
	return nil
}

// Group returns the entries for a muscle group, in catalog order. An
// unknown group is a valid no-results outcome: it returns nil, not an
// error.
func (c *Catalog) Group(muscleGroup string) []Entry {
	return c.groups[models.NormalizeKey(muscleGroup)]
}

// GroupName returns the display name for a muscle group and whether it
// exists.
func (c *Catalog) GroupName(muscleGroup string) (string, bool) {
	name, ok := c.names[models.NormalizeKey(muscleGroup)]
	return name, ok
}

// Groups returns all muscle-group display names, sorted for stable
// listing output.
func (c *Catalog) Groups() []string {
	out := make([]string, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// FindExercise searches every group for an entry by name,
// case-insensitively. It returns the entry, the group display name, and
// whether a match was found. An unmatched name is a no-result outcome,
// not an error.
func (c *Catalog) FindExercise(name string) (Entry, string, bool) {
	key := models.NormalizeKey(name)
	// Walk groups in sorted order so a duplicate name resolves the same
	// way on every call.
	for _, group := range c.Groups() {
		for _, e := range c.groups[models.NormalizeKey(group)] {
			if models.NormalizeKey(e.Name) == key {
				return e, group, true
			}
		}
	}
	return Entry{}, "", false
}

// Exercise constructs a validated models.Exercise from a catalog entry,
// with the duration the user actually performed. A missing catalog
// intensity defaults to medium.
func (e Entry) Exercise(muscleGroup string, durationMin int) (models.Exercise, error) {
	intensity := models.IntensityMedium
	if e.Intensity != "" {
		var err error
		intensity, err = models.ParseIntensity(e.Intensity)
		if err != nil {
			return models.Exercise{}, err
		}
	}
	return models.NewExercise(e.Name, muscleGroup, durationMin, e.CaloriesPerMinute, intensity, e.EquipmentNeeded)
}
