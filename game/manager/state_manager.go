package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// MaxHistory is the number of finished sessions kept in the score history
const MaxHistory = 200

// SessionRecord is the summary of one finished session.
type SessionRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     uint      `json:"score"`
	Meals     int       `json:"meals"`
	Specials  int       `json:"specials"`
	Cause     string    `json:"cause"`
}

// Duration returns how long the session lasted.
func (r SessionRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

type GameStats struct {
	HighScore   uint            `json:"highScore"`
	GamesPlayed int             `json:"gamesPlayed"`
	History     []SessionRecord `json:"history"`
}

// StateManager keeps score history across sessions. When a path is set the
// history is also written to disk after every session.
type StateManager struct {
	path        string
	highScore   uint
	gamesPlayed int
	history     []SessionRecord
}

func NewStateManager(path string) *StateManager {
	sm := &StateManager{
		path:    path,
		history: make([]SessionRecord, 0),
	}
	if path == "" {
		return sm
	}

	if err := sm.LoadStats(path); err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			glog.Warningf("Could not load stats: %v", err)
		}
	}
	return sm
}

func (sm *StateManager) SaveStats(filename string) error {
	stats := GameStats{
		HighScore:   sm.highScore,
		GamesPlayed: sm.gamesPlayed,
		History:     sm.history,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal stats")
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "create stats directory %s", dir)
		}
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return errors.Wrapf(err, "write stats file %s", filename)
	}
	return nil
}

func (sm *StateManager) LoadStats(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "read stats file %s", filename)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "decode stats file %s", filename)
	}

	sm.highScore = stats.HighScore
	sm.gamesPlayed = stats.GamesPlayed
	sm.history = stats.History
	if sm.history == nil {
		sm.history = make([]SessionRecord, 0)
	}
	return nil
}

// Record adds a finished session and persists the stats when configured.
func (sm *StateManager) Record(rec SessionRecord) error {
	sm.gamesPlayed++
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}

	sm.history = append(sm.history, rec)
	if len(sm.history) > MaxHistory {
		sm.history = sm.history[len(sm.history)-MaxHistory:]
	}

	if sm.path == "" {
		return nil
	}
	return sm.SaveStats(sm.path)
}

func (sm *StateManager) GetHighScore() uint {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *StateManager) GetHistory() []SessionRecord {
	return sm.history
}

// GetAverageScore is the mean score over the kept history.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	return stat.Mean(sm.scores(), nil)
}

// GetMedianScore is the median score over the kept history. An even-sized
// history averages the two middle scores.
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	scores := sm.scores()
	slices.Sort(scores)
	n := len(scores)
	if n%2 == 0 {
		return stat.Mean(scores[n/2-1:n/2+1], nil)
	}
	return scores[n/2]
}

// GetAverageDuration is the mean session length in seconds.
func (sm *StateManager) GetAverageDuration() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	durations := make([]float64, len(sm.history))
	for i, rec := range sm.history {
		durations[i] = rec.Duration().Seconds()
	}
	return stat.Mean(durations, nil)
}

func (sm *StateManager) scores() []float64 {
	scores := make([]float64, len(sm.history))
	for i, rec := range sm.history {
		scores[i] = float64(rec.Score)
	}
	return scores
}
