package game

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// SnapshotDump is a plain, serializable rendition of a Snapshot. The
// proximities and counters are derived from the board when loading.
type SnapshotDump struct {
	State      string   `yaml:"state"`
	BombOdds   float64  `yaml:"bomb_odds"`
	Moves      int      `yaml:"moves"`
	StartedAt  string   `yaml:"started_at,omitempty"`
	FinishedAt string   `yaml:"finished_at,omitempty"`
	Board      []string `yaml:"board"`
}

func NewDump(snapshot *Snapshot) *SnapshotDump {
	return &SnapshotDump{
		State:      snapshot.State.String(),
		BombOdds:   snapshot.BombOdds,
		Moves:      snapshot.MovesCount,
		StartedAt:  formatTime(snapshot.StartedAt),
		FinishedAt: formatTime(snapshot.FinishedAt),
		Board:      strings.Split(snapshot.Board.String(), "\n"),
	}
}

func (dump *SnapshotDump) Serialize() string {
	out, err := yaml.Marshal(dump)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// Snapshot rebuilds the game described by the dump
func (dump *SnapshotDump) Snapshot() (*Snapshot, error) {
	board, err := ParseBoard(dump.Board...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid board")
	}

	state, ok := parseGameState(dump.State)
	if !ok {
		return nil, errors.Errorf("unknown game state %q", dump.State)
	}

	startedAt, err := parseTime(dump.StartedAt)
	if err != nil {
		return nil, errors.Wrap(err, "invalid started_at")
	}
	finishedAt, err := parseTime(dump.FinishedAt)
	if err != nil {
		return nil, errors.Wrap(err, "invalid finished_at")
	}

	isFlagged := func(tile Tile) bool {
		return tile.User == Flagged
	}

	return &Snapshot{
		State:          state,
		Columns:        board.Columns(),
		Rows:           board.Rows(),
		BombOdds:       dump.BombOdds,
		Board:          board,
		Proximities:    computeProximities(board),
		BombsCount:     board.Count(Tile.IsBomb),
		UncoveredCount: board.Count(Tile.IsResolved),
		FlagsCount:     board.Count(isFlagged),
		MovesCount:     dump.Moves,
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
	}, nil
}

func LoadDump(in string) (*SnapshotDump, error) {
	var dump SnapshotDump
	if err := yaml.Unmarshal([]byte(in), &dump); err != nil {
		return nil, errors.Wrap(err, "parsing snapshot dump")
	}
	return &dump, nil
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func parseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
