package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

const envPrefix = "SNAKE_"

type Config struct {
	Width         int
	Height        int
	Title         string
	FPS           int
	CellSize      int
	Obstacles     int
	SpeedBoost    bool
	OnDeath       string
	SpawnAttempts int
	StatsFile     string
	Seed          uint64
}

func Default() Config {
	return Config{
		Width:         800,
		Height:        600,
		Title:         "snake",
		FPS:           60,
		CellSize:      types.DefaultCellSize,
		Obstacles:     types.DefaultObstacles,
		SpeedBoost:    true,
		OnDeath:       "restart",
		SpawnAttempts: 10000,
	}
}

// Load builds the configuration from defaults, an optional .env file,
// SNAKE_* environment variables and finally command-line flags.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, errors.Wrap(err, "load .env")
		}
	} else {
		glog.V(1).Info("Loaded environment from .env")
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}

	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Bind registers the configuration flags on fs, using the current values as
// defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels")
	fs.StringVar(&c.Title, "title", c.Title, "Window title")
	fs.IntVar(&c.FPS, "fps", c.FPS, "Target frames per second")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Size of a snake, food or obstacle cell in pixels")
	fs.IntVar(&c.Obstacles, "obstacles", c.Obstacles, "Obstacle count N; N+1 blocks are placed (0 disables obstacles)")
	fs.BoolVar(&c.SpeedBoost, "boost", c.SpeedBoost, "Special food increases snake speed")
	fs.StringVar(&c.OnDeath, "on-death", c.OnDeath, "What to do when the snake dies: restart or halt")
	fs.IntVar(&c.SpawnAttempts, "spawn-attempts", c.SpawnAttempts, "Maximum tries to place food off the snake")
	fs.StringVar(&c.StatsFile, "stats", c.StatsFile, "Path of a JSON file for score history (empty keeps it in memory)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed (0 uses the current time)")
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"WIDTH":          &c.Width,
		"HEIGHT":         &c.Height,
		"FPS":            &c.FPS,
		"CELL":           &c.CellSize,
		"OBSTACLES":      &c.Obstacles,
		"SPAWN_ATTEMPTS": &c.SpawnAttempts,
	}
	for name, dst := range ints {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%s%s", envPrefix, name)
		}
		*dst = n
	}

	if v, ok := lookup(envPrefix + "BOOST"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "%sBOOST", envPrefix)
		}
		c.SpeedBoost = b
	}
	if v, ok := lookup(envPrefix + "SEED"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%sSEED", envPrefix)
		}
		c.Seed = n
	}
	if v, ok := lookup(envPrefix + "TITLE"); ok {
		c.Title = v
	}
	if v, ok := lookup(envPrefix + "ON_DEATH"); ok {
		c.OnDeath = strings.TrimSpace(v)
	}
	if v, ok := lookup(envPrefix + "STATS"); ok {
		c.StatsFile = strings.TrimSpace(v)
	}
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalid, "window size %dx%d", c.Width, c.Height)
	case c.FPS <= 0:
		return errors.Wrapf(ErrInvalid, "fps %d", c.FPS)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalid, "cell size %d", c.CellSize)
	case c.Obstacles < 0:
		return errors.Wrapf(ErrInvalid, "obstacle count %d", c.Obstacles)
	case c.SpawnAttempts < 1:
		return errors.Wrapf(ErrInvalid, "spawn attempts %d", c.SpawnAttempts)
	}
	if _, err := c.DeathPolicy(); err != nil {
		return err
	}
	return nil
}

func (c Config) DeathPolicy() (game.DeathPolicy, error) {
	switch strings.ToLower(c.OnDeath) {
	case "restart":
		return game.Restart, nil
	case "halt":
		return game.Halt, nil
	}
	return 0, errors.Wrapf(ErrInvalid, "on-death policy %q", c.OnDeath)
}

// GameOptions converts the configuration into game options. It assumes
// Validate has passed.
func (c Config) GameOptions() game.Options {
	policy, _ := c.DeathPolicy()
	size := float32(c.CellSize)
	return game.Options{
		CellSize:      types.Size{Width: size, Height: size},
		Obstacles:     c.Obstacles,
		SpeedBoost:    c.SpeedBoost,
		SpawnAttempts: c.SpawnAttempts,
		OnDeath:       policy,
	}
}
