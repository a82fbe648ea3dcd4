// Package config loads the runtime TOML configuration
package config

import (
	_ "embed"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/horde/game"
	"github.com/lixenwraith/horde/parameter"
	"github.com/lixenwraith/horde/progression"
	"github.com/lixenwraith/horde/system"
)

// DefaultConfigPath is checked when no explicit path is given
const DefaultConfigPath = "horde.toml"

//go:embed default.toml
var embeddedDefault string

type Arena struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Run struct {
	Seed            uint64  `toml:"seed"`
	InitialEnemies  int     `toml:"initial_enemies"`
	TargetEnemies   int     `toml:"target_enemies"`
	WanderInfluence float64 `toml:"wander_influence"`
}

type Progression struct {
	BaseKills         int     `toml:"base_kills"`
	KillsPerLevel     int     `toml:"kills_per_level"`
	BossInterval      int     `toml:"boss_interval"`
	DifficultyStep    float64 `toml:"difficulty_step"`
	HealthStep        float64 `toml:"health_step"`
	FirstHorde        int     `toml:"first_horde"`
	HordeMin          int     `toml:"horde_min"`
	HordeMax          int     `toml:"horde_max"`
	SpawnIntervalBase int     `toml:"spawn_interval_base"`
	SpawnIntervalStep int     `toml:"spawn_interval_step"`
	SpawnIntervalMin  int     `toml:"spawn_interval_min"`
}

type Combat struct {
	LootChance   float64 `toml:"loot_chance"`
	MaxNeighbors int     `toml:"max_neighbors"`
}

type Spectator struct {
	Addr           string `toml:"addr"`
	BroadcastEvery int    `toml:"broadcast_every"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Config is the full runtime configuration
type Config struct {
	Arena       Arena       `toml:"arena"`
	Run         Run         `toml:"run"`
	Progression Progression `toml:"progression"`
	Combat      Combat      `toml:"combat"`
	Spectator   Spectator   `toml:"spectator"`
	Audio       Audio       `toml:"audio"`
}

// Default returns the embedded configuration
func Default() Config {
	cfg, err := Parse([]byte(embeddedDefault))
	if err != nil {
		panic(errors.Wrap(err, "embedded default config"))
	}
	return cfg
}

// Parse decodes TOML over the embedded defaults and validates the result
// Keys absent from data keep their default values
func Parse(data []byte) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(embeddedDefault, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode embedded defaults")
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads and parses a config file
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// LoadAuto resolves configuration with priority: customPath > ./horde.toml > embedded
func LoadAuto(customPath string) (Config, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}
	if fileExists(DefaultConfigPath) {
		return LoadFile(DefaultConfigPath)
	}
	return Default(), nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return errors.Errorf("arena size must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	case c.Run.InitialEnemies < 0:
		return errors.Errorf("run.initial_enemies must not be negative, got %d", c.Run.InitialEnemies)
	case c.Run.TargetEnemies < parameter.TargetEnemiesMin || c.Run.TargetEnemies > parameter.TargetEnemiesMax:
		return errors.Errorf("run.target_enemies must be in [%d, %d], got %d",
			parameter.TargetEnemiesMin, parameter.TargetEnemiesMax, c.Run.TargetEnemies)
	case c.Run.WanderInfluence < 0 || c.Run.WanderInfluence > 1:
		return errors.Errorf("run.wander_influence must be in [0, 1], got %v", c.Run.WanderInfluence)
	case c.Progression.BaseKills <= 0 || c.Progression.KillsPerLevel <= 0:
		return errors.New("progression kill thresholds must be positive")
	case c.Progression.BossInterval < 0:
		return errors.Errorf("progression.boss_interval must not be negative, got %d", c.Progression.BossInterval)
	case c.Progression.DifficultyStep < 0 || c.Progression.HealthStep < 0:
		return errors.New("progression steps must not be negative")
	case c.Progression.FirstHorde <= 0:
		return errors.Errorf("progression.first_horde must be positive, got %d", c.Progression.FirstHorde)
	case c.Progression.HordeMin <= 0 || c.Progression.HordeMax <= c.Progression.HordeMin:
		return errors.Errorf("progression horde range [%d, %d) is empty", c.Progression.HordeMin, c.Progression.HordeMax)
	case c.Progression.SpawnIntervalMin <= 0 || c.Progression.SpawnIntervalBase < c.Progression.SpawnIntervalMin:
		return errors.Errorf("progression spawn interval base %d below minimum %d",
			c.Progression.SpawnIntervalBase, c.Progression.SpawnIntervalMin)
	case c.Combat.LootChance < 0 || c.Combat.LootChance > 1:
		return errors.Errorf("combat.loot_chance must be in [0, 1], got %v", c.Combat.LootChance)
	case c.Combat.MaxNeighbors < 0:
		return errors.Errorf("combat.max_neighbors must not be negative, got %d", c.Combat.MaxNeighbors)
	case c.Spectator.BroadcastEvery <= 0:
		return errors.Errorf("spectator.broadcast_every must be positive, got %d", c.Spectator.BroadcastEvery)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume)
	}
	return nil
}

// GameOptions maps the configuration onto the simulation options
func (c *Config) GameOptions() game.Options {
	return game.Options{
		Width:  c.Arena.Width,
		Height: c.Arena.Height,
		Seed:   c.Run.Seed,
		Settings: system.Settings{
			InitialEnemies:  c.Run.InitialEnemies,
			TargetEnemies:   c.Run.TargetEnemies,
			WanderInfluence: c.Run.WanderInfluence,
			LootChance:      c.Combat.LootChance,
			MaxNeighbors:    c.Combat.MaxNeighbors,
		},
		Progression: progression.Config{
			BaseKills:         c.Progression.BaseKills,
			KillsPerLevel:     c.Progression.KillsPerLevel,
			BossInterval:      c.Progression.BossInterval,
			DifficultyStep:    c.Progression.DifficultyStep,
			HealthStep:        c.Progression.HealthStep,
			FirstHorde:        c.Progression.FirstHorde,
			HordeMin:          c.Progression.HordeMin,
			HordeMax:          c.Progression.HordeMax,
			SpawnIntervalBase: c.Progression.SpawnIntervalBase,
			SpawnIntervalStep: c.Progression.SpawnIntervalStep,
			SpawnIntervalMin:  c.Progression.SpawnIntervalMin,
		},
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
