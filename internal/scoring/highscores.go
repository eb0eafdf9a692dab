package scoring

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// High-score table constants.
const (
	HighScoresKey = "insectsAttackHighScores"
	MaxHighScores = 10
	DateLayout    = "2006-01-02"
)

// KeyValue is a process-wide persistent save area. Load reports found=false
// for a key that was never written.
type KeyValue interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte) error
}

// Entry is one high-score row.
type Entry struct {
	Score int    `yaml:"score"`
	Level int    `yaml:"level"`
	Date  string `yaml:"date"`
}

// HighScores is the top-10 table, kept sorted by score descending.
type HighScores struct {
	kv      KeyValue
	logger  *log.Logger
	entries []Entry
	now     func() time.Time
}

// NewHighScores creates an empty table backed by kv. A nil kv keeps the
// table in memory only.
func NewHighScores(kv KeyValue, logger *log.Logger) *HighScores {
	if logger == nil {
		logger = log.Default()
	}
	return &HighScores{kv: kv, logger: logger, now: time.Now}
}

// Load reads the table. Missing or corrupt data leaves it empty and is
// logged, never returned.
func (h *HighScores) Load() {
	h.entries = nil
	if h.kv == nil {
		return
	}
	data, found, err := h.kv.Load(HighScoresKey)
	if err != nil {
		h.logger.Warn("could not load high scores", "err", err)
		return
	}
	if !found {
		return
	}
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		h.logger.Warn("discarding corrupt high scores", "err", err)
		return
	}
	h.entries = normalize(entries)
	h.logger.Debug("high scores loaded", "count", len(h.entries))
}

// Record inserts a result and persists the table. A write failure is
// logged; the in-memory table keeps the new entry.
func (h *HighScores) Record(score, level int) Entry {
	e := Entry{Score: score, Level: level, Date: h.now().Format(DateLayout)}
	h.entries = normalize(append(h.entries, e))
	if err := h.save(); err != nil {
		h.logger.Warn("could not save high scores", "err", err)
	}
	return e
}

// Clear empties the table and persists the empty table.
func (h *HighScores) Clear() error {
	h.entries = nil
	return h.save()
}

func (h *HighScores) save() error {
	if h.kv == nil {
		return nil
	}
	data, err := yaml.Marshal(h.entries)
	if err != nil {
		return fmt.Errorf("scoring: marshal high scores: %w", err)
	}
	if err := h.kv.Save(HighScoresKey, data); err != nil {
		return fmt.Errorf("scoring: save high scores: %w", err)
	}
	return nil
}

// IsHighScore reports whether score would enter the table.
func (h *HighScores) IsHighScore(score int) bool {
	return len(h.entries) < MaxHighScores || score > h.entries[len(h.entries)-1].Score
}

// Entries returns a copy of the table, best first.
func (h *HighScores) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Best returns the top score, or 0 for an empty table.
func (h *HighScores) Best() int {
	if len(h.entries) == 0 {
		return 0
	}
	return h.entries[0].Score
}

func normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxHighScores {
		entries = entries[:MaxHighScores]
	}
	return entries
}
