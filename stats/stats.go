// Package stats keeps lifetime run records on disk.
package stats

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/trvswgnr/nutcaster/game"
)

// Backend stores raw items by key. *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Record is the saved summary of every run of one scenario.
type Record struct {
	Runs      int     `json:"runs"`
	Wins      int     `json:"wins"`
	Kills     int     `json:"kills"`
	Nuts      int     `json:"nuts"`
	BestTime  float64 `json:"bestTime"` // fastest win in seconds, 0 when never won
	LastRunID string  `json:"lastRunId"`
}

// Store reads and updates records. A Store without a backend does nothing.
type Store struct {
	backend Backend
}

// Open opens the on-disk store for the app. Failing to open is not fatal:
// the returned Store simply keeps nothing.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[stats] warning: could not open storage: %v", err)
		return &Store{}
	}
	return &Store{backend: m}
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

func itemKey(scenario string) string {
	return "stats_" + scenario
}

// Load returns the record for the scenario, or a zero record when nothing
// was saved yet.
func (s *Store) Load(scenario string) (Record, error) {
	var rec Record
	if s.backend == nil {
		return rec, nil
	}
	data, err := s.backend.LoadItem(itemKey(scenario))
	if err != nil {
		return rec, fmt.Errorf("load %s: %w", scenario, err)
	}
	if data == nil {
		return rec, nil
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parse %s: %w", scenario, err)
	}
	return rec, nil
}

// Add folds a finished run into its scenario's record and saves it.
// Failures are logged and the updated record is still returned.
func (s *Store) Add(r game.Result) Record {
	rec, err := s.Load(r.Scenario)
	if err != nil {
		log.Printf("[stats] warning: %v, starting a fresh record", err)
		rec = Record{}
	}

	rec.Runs++
	rec.Kills += r.Kills
	rec.Nuts += r.Nuts
	rec.LastRunID = r.RunID
	if r.Won {
		rec.Wins++
		if rec.BestTime == 0 || r.Duration < rec.BestTime {
			rec.BestTime = r.Duration
		}
	}

	if s.backend == nil {
		return rec
	}
	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("[stats] warning: could not serialize record: %v", err)
		return rec
	}
	if err := s.backend.SaveItem(itemKey(r.Scenario), data); err != nil {
		log.Printf("[stats] warning: could not save record: %v", err)
		return rec
	}
	log.Printf("[stats] %s: %d runs, %d wins, best %.1fs", r.Scenario, rec.Runs, rec.Wins, rec.BestTime)
	return rec
}
