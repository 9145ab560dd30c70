package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/sweepcore/difficulty"
	"github.com/they4kman/sweepcore/director/constraint"
	"github.com/they4kman/sweepcore/director/random"
	"github.com/they4kman/sweepcore/game"
)

type options struct {
	difficulty       string
	settings         difficulty.Settings
	difficultiesPath string
	seed             int64
	director         string
	savedDumpsDir    string
	logLevel         string
}

var opts = options{
	difficulty: difficulty.Beginner,
	director:   "none",
	logLevel:   "info",
}

var rootCmd = &cobra.Command{
	Use:   "sweepcore",
	Short: "Play manual or computer-driven Minesweeper in the terminal",
	Long: `sweepcore is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play a beginner game, reading moves from stdin
	sweepcore

Pick a difficulty, or give explicit board dimensions
	sweepcore --difficulty expert
	sweepcore -w 20 -h 10 --odds 0.15

Use the director flag to make the computer play for you
	sweepcore --director constraint
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(opts.logLevel)
		if err != nil {
			return errors.Wrap(err, "invalid --log-level")
		}
		logrus.SetLevel(level)
		logrus.SetOutput(cmd.ErrOrStderr())
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession(cmd)
		if err != nil {
			return err
		}
		return session.run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSession(cmd *cobra.Command) (*session, error) {
	config := game.NewEngineConfig()
	if cmd.Flags().Changed("seed") {
		config.Seed = opts.seed
	}

	if opts.difficultiesPath != "" {
		table, err := loadDifficulties(opts.difficultiesPath)
		if err != nil {
			return nil, err
		}
		config.Difficulties = config.Difficulties.Merge(table)
	}

	// Explicit dimensions take precedence over the difficulty
	var override *difficulty.Settings
	if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || cmd.Flags().Changed("odds") {
		override = &opts.settings
	}

	director, err := newDirector(opts.director, config.Seed)
	if err != nil {
		return nil, err
	}

	return &session{
		engine:        config.NewEngine(),
		clock:         config.Clock,
		difficulty:    opts.difficulty,
		override:      override,
		director:      director,
		savedDumpsDir: opts.savedDumpsDir,
		in:            cmd.InOrStdin(),
		out:           cmd.OutOrStdout(),
		log:           logrus.WithField("component", "session"),
	}, nil
}

func loadDifficulties(path string) (difficulty.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening difficulty table")
	}
	defer file.Close()

	table, err := difficulty.Load(file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return table, nil
}

var directors = map[string]func(seed int64) game.Director{
	"none": nil,
	"random": func(seed int64) game.Director {
		return random.New(seed)
	},
	"constraint": func(seed int64) game.Director {
		return constraint.New(seed, logrus.WithField("component", "director"))
	},
}

func newDirector(name string, seed int64) (game.Director, error) {
	factory, ok := directors[name]
	if !ok {
		return nil, errors.Errorf("unknown director %q (expected none, random or constraint)", name)
	}
	if factory == nil {
		return nil, nil
	}
	return factory(seed), nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	ids := strings.Join(difficulty.Defaults().IDs(), ", ")
	rootCmd.Flags().StringVarP(&opts.difficulty, "difficulty", "d", opts.difficulty, "Difficulty to play ("+ids+", or one from --difficulties)")
	rootCmd.Flags().IntVarP(&opts.settings.Columns, "width", "w", 30, "Width of game board, in tiles; overrides --difficulty")
	rootCmd.Flags().IntVarP(&opts.settings.Rows, "height", "h", 16, "Height of game board, in tiles; overrides --difficulty")
	rootCmd.Flags().Float64VarP(&opts.settings.BombOdds, "odds", "o", 0.2, "Fraction of tiles holding a bomb; overrides --difficulty")
	rootCmd.Flags().StringVar(&opts.difficultiesPath, "difficulties", "", "YAML file of extra difficulties")
	rootCmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for bomb placement (random when not given)")
	rootCmd.Flags().StringVar(&opts.director, "director", opts.director, "Make the computer play: none, random or constraint")
	rootCmd.Flags().StringVar(&opts.savedDumpsDir, "save-dir", "", "Directory where final boards of games are saved")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Logging level (debug, info, warn, error)")
}
