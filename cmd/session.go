package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepcore/difficulty"
	"github.com/they4kman/sweepcore/game"
)

const helpText = `commands:
  r ROW COL   reveal a tile
  f ROW COL   toggle a flag
  c ROW COL   reveal around a satisfied number
  n [DIFF]    new game, optionally switching difficulty
  q           quit
`

// session drives games from text commands, or from a director
type session struct {
	engine     *game.Engine
	clock      game.Clock
	difficulty string
	override   *difficulty.Settings
	director   game.Director

	// Path to directory where final snapshots of games should be saved
	savedDumpsDir string

	in  io.Reader
	out io.Writer
	log logrus.FieldLogger

	snapshot *game.Snapshot
}

func (s *session) run() error {
	if err := s.restart(); err != nil {
		return err
	}

	if s.director != nil {
		return s.autoplay()
	}

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		quit, err := s.handle(strings.Fields(scanner.Text()))
		if err != nil {
			fmt.Fprintln(s.out, err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *session) autoplay() error {
	for !s.snapshot.State.IsOver() {
		action, ok := s.director.Act(s.snapshot)
		if !ok {
			return errors.New("director gave up")
		}

		fmt.Fprintln(s.out, action)
		s.apply(action)
	}
	return nil
}

func (s *session) handle(fields []string) (quit bool, err error) {
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "q", "quit":
		return true, nil
	case "h", "help", "?":
		fmt.Fprint(s.out, helpText)
		return false, nil
	case "n", "new":
		if len(fields) > 1 {
			return false, s.switchDifficulty(fields[1])
		}
		return false, s.restart()
	}

	actions := map[string]game.ActionType{
		"r": game.Click,
		"f": game.RightClick,
		"c": game.MiddleClick,
	}
	actionType, ok := actions[fields[0]]
	if !ok {
		return false, errors.Errorf("unknown command %q; try h", fields[0])
	}

	row, col, err := parseCoords(fields[1:])
	if err != nil {
		return false, err
	}
	s.apply(game.CellAction{Action: actionType, Row: row, Col: col})
	return false, nil
}

func (s *session) apply(action game.CellAction) {
	next, changed := s.engine.Apply(s.snapshot, action)
	if !changed {
		s.log.WithField("action", action).Debug("nothing to do")
		return
	}
	s.snapshot = next
	s.print()

	if s.snapshot.State.IsOver() {
		s.onGameEnd()
	}
}

func (s *session) restart() error {
	snapshot, err := s.engine.Restart(s.difficulty, s.override)
	if err != nil {
		return err
	}
	s.snapshot = snapshot
	s.print()
	return nil
}

// switchDifficulty plays out the resize between the current board and the
// new difficulty, ending on a fresh game of the new difficulty
func (s *session) switchDifficulty(id string) error {
	to, err := s.engine.Difficulties().Resolve(id, nil)
	if err != nil {
		return err
	}

	stream := s.engine.Tween(s.snapshot.Settings(), to)
	for frame, ok := stream.Next(); ok; frame, ok = stream.Next() {
		s.log.WithField("settings", frame.Settings()).Debug("resizing board")
		s.snapshot = frame
	}

	s.difficulty, s.override = id, nil
	s.print()
	return nil
}

func (s *session) print() {
	fmt.Fprint(s.out, game.Render(s.snapshot))
	fmt.Fprintf(s.out, "%03d  %s  %s\n",
		s.snapshot.RemainingBombs(),
		formatElapsed(s.snapshot.Elapsed(s.clock())),
		s.snapshot.State,
	)
}

func (s *session) onGameEnd() {
	switch s.snapshot.State {
	case game.Winner:
		fmt.Fprintln(s.out, "WIN!")
	case game.GameOver:
		fmt.Fprintln(s.out, "LOSE :(")
	}

	if err := s.saveDump(); err != nil {
		s.log.WithError(err).Error("unable to save final board")
	}
}

func (s *session) saveDump() error {
	if s.savedDumpsDir == "" {
		return nil
	}

	stat, err := os.Stat(s.savedDumpsDir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(s.savedDumpsDir, 0777); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else if !stat.Mode().IsDir() {
		return errors.Errorf("%s is not a directory; cannot save boards to it", s.savedDumpsDir)
	}

	// TODO: prevent duplicate filenames
	path := filepath.Join(s.savedDumpsDir, dumpFilename(s.snapshot, s.clock()))
	if err := os.WriteFile(path, []byte(game.NewDump(s.snapshot).Serialize()), 0666); err != nil {
		return errors.Wrap(err, "writing board")
	}

	s.log.WithField("path", path).Info("saved final board")
	return nil
}

func dumpFilename(snapshot *game.Snapshot, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch snapshot.State {
	case game.Winner:
		stateStr = "win"
	case game.GameOver:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}

func parseCoords(fields []string) (int, int, error) {
	if len(fields) != 2 {
		return 0, 0, errors.New("expected ROW COL")
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid row")
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid column")
	}
	return row, col, nil
}

func formatElapsed(elapsed time.Duration) string {
	seconds := int(elapsed / time.Second)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
