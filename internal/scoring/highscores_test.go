package scoring

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

type memKV struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Load(key string) ([]byte, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	d, ok := m.data[key]
	return d, ok, nil
}

func (m *memKV) Save(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = data
	return nil
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func fixedClock() time.Time { return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC) }

func TestHighScoresSortedAndBounded(t *testing.T) {
	kv := newMemKV()
	h := NewHighScores(kv, quietLogger())
	h.now = fixedClock

	for i := 1; i <= 12; i++ {
		h.Record(i*100, i)
	}

	entries := h.Entries()
	if len(entries) != MaxHighScores {
		t.Fatalf("%d entries, expected %d", len(entries), MaxHighScores)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatalf("entries not sorted: %+v", entries)
		}
	}
	if entries[0].Score != 1200 || entries[len(entries)-1].Score != 300 {
		t.Errorf("best=%d worst=%d, expected 1200 and 300", entries[0].Score, entries[len(entries)-1].Score)
	}
	if entries[0].Date != "2024-03-09" {
		t.Errorf("date = %q", entries[0].Date)
	}
	if h.IsHighScore(200) {
		t.Error("200 should not enter a full table whose lowest is 300")
	}
	if !h.IsHighScore(301) {
		t.Error("301 should enter the table")
	}
}

func TestHighScoresRoundTripThroughStore(t *testing.T) {
	kv := newMemKV()
	h := NewHighScores(kv, quietLogger())
	h.Record(4200, 3)
	h.Record(900, 1)

	reloaded := NewHighScores(kv, quietLogger())
	reloaded.Load()

	entries := reloaded.Entries()
	if len(entries) != 2 || entries[0].Score != 4200 || entries[0].Level != 3 {
		t.Errorf("reloaded entries = %+v", entries)
	}
	if reloaded.Best() != 4200 {
		t.Errorf("Best() = %d, expected 4200", reloaded.Best())
	}
}

func TestHighScoresClear(t *testing.T) {
	kv := newMemKV()
	h := NewHighScores(kv, quietLogger())
	h.Record(4200, 3)

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if h.Best() != 0 {
		t.Errorf("Best() = %d after Clear, expected 0", h.Best())
	}

	reloaded := NewHighScores(kv, quietLogger())
	reloaded.Load()
	if n := len(reloaded.Entries()); n != 0 {
		t.Errorf("reloaded %d entries after Clear, expected 0", n)
	}
}

func TestHighScoresCorruptData(t *testing.T) {
	kv := newMemKV()
	kv.data[HighScoresKey] = []byte("{not: [valid")

	h := NewHighScores(kv, quietLogger())
	h.Load()

	if len(h.Entries()) != 0 {
		t.Errorf("corrupt data should load as an empty table, got %+v", h.Entries())
	}
}

func TestHighScoresLoadError(t *testing.T) {
	kv := newMemKV()
	kv.loadErr = errors.New("disk gone")

	h := NewHighScores(kv, quietLogger())
	h.Load()

	if len(h.Entries()) != 0 {
		t.Error("load error should leave the table empty")
	}
}

func TestHighScoresSaveErrorKeepsMemory(t *testing.T) {
	kv := newMemKV()
	kv.saveErr = errors.New("read-only")

	h := NewHighScores(kv, quietLogger())
	h.Record(100, 1)

	if len(h.Entries()) != 1 {
		t.Errorf("entries = %+v, expected the record kept in memory", h.Entries())
	}
	if _, ok := kv.data[HighScoresKey]; ok {
		t.Error("nothing should be stored after a failed save")
	}
}

func TestHighScoresWithoutStore(t *testing.T) {
	h := NewHighScores(nil, quietLogger())
	h.Load()
	h.Record(50, 1)

	if h.Best() != 50 {
		t.Errorf("Best() = %d, expected 50", h.Best())
	}
}
