package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/qnkhuat/blockfall/pkg/mino"
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

const (
	DefaultWidth     = 10
	DefaultHeight    = 20
	DefaultStepDelay = time.Second
	DefaultLockDelay = 500 * time.Millisecond
	DefaultMaxScores = 5
)

var DefaultSpawn = mino.Point{X: 4, Y: 18}

type Config struct {
	Width  int
	Height int
	Spawn  mino.Point

	StepDelay time.Duration // Gravity interval
	LockDelay time.Duration

	Randomizer string
	Seed       int64

	MaxScores int
	LogLevel  int
}

func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Spawn:      DefaultSpawn,
		StepDelay:  DefaultStepDelay,
		LockDelay:  DefaultLockDelay,
		Randomizer: RandomizerUniform,
		MaxScores:  DefaultMaxScores,
		LogLevel:   LogStandard,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid board size %dx%d", c.Width, c.Height)
	case c.Spawn.X < 0 || c.Spawn.X >= c.Width || c.Spawn.Y < 0:
		return fmt.Errorf("spawn point %s is outside a %dx%d board", c.Spawn, c.Width, c.Height)
	case c.StepDelay <= 0:
		return errors.New("step delay must be positive")
	case c.LockDelay < 0:
		return errors.New("lock delay must not be negative")
	case c.MaxScores <= 0:
		return errors.New("ranking must keep at least one score")
	case c.Randomizer != RandomizerUniform && c.Randomizer != RandomizerBag:
		return fmt.Errorf("unknown randomizer %q", c.Randomizer)
	}

	if err := mino.ValidateTables(); err != nil {
		return err
	}

	g := mino.NewGrid(c.Width, c.Height)
	p := mino.NewPiece(c.StepDelay, c.LockDelay)
	for _, k := range mino.Kinds {
		p.Initialize(k, c.Spawn, mino.ColorOf(k))
		if !p.Fits(g) {
			return fmt.Errorf("%s piece does not fit at spawn point %s on a %dx%d board", k, c.Spawn, c.Width, c.Height)
		}
	}

	return nil
}

// NewRandomizer builds the piece randomizer named by the config. A zero seed
// is replaced with the current time.
func (c Config) NewRandomizer() (mino.Randomizer, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	switch c.Randomizer {
	case RandomizerBag:
		return mino.NewBag(seed, mino.Kinds)
	case RandomizerUniform, "":
		return mino.NewUniform(seed, mino.Kinds)
	default:
		return nil, fmt.Errorf("unknown randomizer %q", c.Randomizer)
	}
}
