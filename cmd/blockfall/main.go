package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/qnkhuat/blockfall/pkg"
	"github.com/qnkhuat/blockfall/pkg/game"
	"github.com/qnkhuat/blockfall/pkg/gui"
)

type options struct {
	name       string
	width      int
	height     int
	stepDelay  time.Duration
	lockDelay  time.Duration
	randomizer string
	seed       int64
	scoresFile string
	maxScores  int
	showScores bool
	themeName  string
	logPath    string
	logDebug   bool
	logVerbose bool
}

func defaultScoresFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "blockfall-scores.json"
	}

	return filepath.Join(dir, "blockfall", "scores.json")
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}

	flags := flag.NewFlagSet("blockfall", flag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVar(&o.name, "name", "", "player name (default generated)")
	flags.IntVar(&o.width, "width", game.DefaultWidth, "board width")
	flags.IntVar(&o.height, "height", game.DefaultHeight, "board height")
	flags.DurationVar(&o.stepDelay, "step", game.DefaultStepDelay, "gravity interval")
	flags.DurationVar(&o.lockDelay, "lock", game.DefaultLockDelay, "lock delay after a piece lands")
	flags.StringVar(&o.randomizer, "randomizer", game.RandomizerUniform, "piece randomizer: uniform or bag")
	flags.Int64Var(&o.seed, "seed", 0, "randomizer seed (default time based)")
	flags.StringVar(&o.scoresFile, "scores-file", defaultScoresFile(), "path to high score file")
	flags.IntVar(&o.maxScores, "max-scores", game.DefaultMaxScores, "number of high scores kept")
	flags.BoolVar(&o.showScores, "scores", false, "print high scores and exit")
	flags.StringVar(&o.themeName, "theme", gui.ThemeBasic.Name, "color theme: "+strings.Join(gui.ThemeNames(), ", "))
	flags.StringVar(&o.logPath, "log", "", "path to log file")
	flags.BoolVar(&o.logDebug, "debug", false, "enable debug logging")
	flags.BoolVar(&o.logVerbose, "verbose", false, "enable verbose logging")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *options) config() game.Config {
	c := game.DefaultConfig()
	c.Width = o.width
	c.Height = o.height
	c.StepDelay = o.stepDelay
	c.LockDelay = o.lockDelay
	c.Randomizer = o.randomizer
	c.Seed = o.seed
	c.MaxScores = o.maxScores

	if c.Width != game.DefaultWidth || c.Height != game.DefaultHeight {
		c.Spawn.X = (c.Width - 1) / 2
		c.Spawn.Y = c.Height - 2
	}

	switch {
	case o.logVerbose:
		c.LogLevel = game.LogVerbose
	case o.logDebug:
		c.LogLevel = game.LogDebug
	}

	return c
}

func printScores(w io.Writer, r *game.Ranking) {
	title := color.New(color.FgYellow, color.Bold)
	title.Fprintln(w, "High Scores")

	if len(r.Scores) == 0 {
		color.New(color.Faint).Fprintln(w, "No Scores Yet")
		return
	}

	rank := color.New(color.FgCyan)
	for i, score := range r.Scores {
		rank.Fprintf(w, "%2d. ", i+1)
		fmt.Fprintln(w, score)
	}
}

// run sets up and plays a game and returns the exit status. Errors before the
// GUI owns the terminal are written to stderr as well as the log.
func run(args []string, stdout, stderr io.Writer) int {
	fail := func(format string, a ...interface{}) int {
		msg := fmt.Sprintf(format, a...)
		log.Println(msg)
		fmt.Fprintln(stderr, msg)

		return 1
	}

	o, err := parseFlags(args, stderr)
	if err == flag.ErrHelp {
		return 0
	} else if err != nil {
		return 2
	}

	logFile, err := pkg.InitLog(o.logPath, "CLIENT: ")
	if err != nil {
		return fail("%s", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	c := o.config()
	if err := c.Validate(); err != nil {
		return fail("invalid configuration: %s", err)
	}

	store, err := game.OpenFileStore(o.scoresFile)
	if err != nil {
		return fail("failed to open scores: %s", err)
	}
	ranking := game.NewRanking(store, c.MaxScores)

	if o.showScores {
		printScores(stdout, ranking)
		return 0
	}

	theme, err := gui.ImportTheme(o.themeName)
	if err != nil {
		return fail("%s", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fail("blockfall must be run in an interactive terminal")
	}

	session, err := game.NewSession(c, nil, ranking)
	if err != nil {
		return fail("invalid configuration: %s", err)
	}

	session.Player = o.name
	if session.Player == "" {
		session.Player = petname.Generate(2, "-")
	}

	g := gui.New(session, theme)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		g.Stop()
	}()

	log.Printf("Starting blockfall for %s", session.Player)
	if err := g.Run(); err != nil {
		return fail("failed to run blockfall: %s", err)
	}

	return 0
}

func main() {
	rand.Seed(time.Now().UTC().UnixNano())

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
