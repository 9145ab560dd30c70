package difficulty

import (
	"fmt"
	"io"
	"io/ioutil"
	"sort"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Settings describe the shape of a board: its dimensions, in tiles, and the
// fraction of tiles seeded with bombs.
type Settings struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	BombOdds float64 `yaml:"bomb_odds"`
}

func (settings Settings) String() string {
	return fmt.Sprintf("%dx%d@%.3f", settings.Columns, settings.Rows, settings.BombOdds)
}

const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Expert       = "expert"
)

// Table maps difficulty identifiers to their settings
type Table map[string]Settings

// Defaults returns the classic three difficulties
func Defaults() Table {
	return Table{
		Beginner:     {Columns: 9, Rows: 9, BombOdds: 10.0 / 81},
		Intermediate: {Columns: 16, Rows: 16, BombOdds: 40.0 / 256},
		Expert:       {Columns: 30, Rows: 16, BombOdds: 99.0 / 480},
	}
}

// ConfigurationError is returned when a difficulty is requested which the
// table does not know, and no explicit settings were supplied instead.
type ConfigurationError struct {
	ID string
}

func (err *ConfigurationError) Error() string {
	if err.ID == "" {
		return "no difficulty or settings given"
	}
	return fmt.Sprintf("unknown difficulty %q", err.ID)
}

// Resolve picks the settings for a new game. Explicit settings always win
// over the table.
func (table Table) Resolve(id string, override *Settings) (Settings, error) {
	if override != nil {
		return *override, nil
	}
	if settings, ok := table[id]; ok {
		return settings, nil
	}
	return Settings{}, &ConfigurationError{ID: id}
}

// IDs returns the known difficulty identifiers, sorted
func (table Table) IDs() []string {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Merge returns a new table with the entries of other layered over table's
func (table Table) Merge(other Table) Table {
	merged := make(Table, len(table)+len(other))
	for id, settings := range table {
		merged[id] = settings
	}
	for id, settings := range other {
		merged[id] = settings
	}
	return merged
}

// Load reads a table from YAML, e.g.
//
//	tiny:
//	  columns: 4
//	  rows: 4
//	  bomb_odds: 0.125
func Load(in io.Reader) (Table, error) {
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading difficulty table")
	}

	table := Table{}
	if err := yaml.UnmarshalStrict(data, &table); err != nil {
		return nil, errors.Wrap(err, "parsing difficulty table")
	}
	return table, nil
}
