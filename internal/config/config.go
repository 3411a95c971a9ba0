package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"

	"pitch/internal/bot"
	"pitch/internal/domain"
)

var ErrPlayerCount = errors.New("config must name exactly four players")

// SheetRef selects a worksheet by zero-based index or by name.
// JSON accepts either a number or a string.
type SheetRef string

func (s *SheetRef) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = SheetRef(strconv.Itoa(n))
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("bid_strength_sheet must be a number or a string: %w", err)
	}
	*s = SheetRef(name)
	return nil
}

// Index returns the sheet index when the reference is numeric.
func (s SheetRef) Index() (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(string(s))
	return n, err == nil
}

type StrategyConfig struct {
	BidStrategy      string   `json:"bid_strategy"`
	PlayStrategy     string   `json:"play_strategy"`
	Aggressiveness   float64  `json:"aggressiveness"`
	Restraint        float64  `json:"restraint"`
	BidStrengthFile  string   `json:"bid_strength_file"`
	BidStrengthSheet SheetRef `json:"bid_strength_sheet"`
}

type PlayerConfig struct {
	Name       string         `json:"name"`
	Strategies StrategyConfig `json:"strategies"`
}

type GameConfig struct {
	Hands      int            `json:"hands"`
	Seed       int64          `json:"seed"`
	Debug      bool           `json:"debug"`
	Verbose    bool           `json:"verbose"`
	MaxRedeals int            `json:"max_redeals"`
	Players    []PlayerConfig `json:"players"`
}

const (
	defaultHands      = 1
	defaultMaxRedeals = 3
)

// Default is one hand between four first-card players.
func Default() *GameConfig {
	c := &GameConfig{Hands: defaultHands, MaxRedeals: defaultMaxRedeals}
	for i := 0; i < domain.SeatCount; i++ {
		c.Players = append(c.Players, PlayerConfig{Name: fmt.Sprintf("Player %d", i+1)})
	}
	return c
}

// Load reads a JSON game config. Missing players are filled with defaults.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	c := &GameConfig{Hands: defaultHands, MaxRedeals: defaultMaxRedeals}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	for i := len(c.Players); i < domain.SeatCount; i++ {
		c.Players = append(c.Players, PlayerConfig{Name: fmt.Sprintf("Player %d", i+1)})
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the player count and numeric ranges.
func (c *GameConfig) Validate() error {
	if len(c.Players) != domain.SeatCount {
		return fmt.Errorf("%w: got %d", ErrPlayerCount, len(c.Players))
	}
	if c.Hands < 0 {
		return fmt.Errorf("hands must not be negative: %d", c.Hands)
	}
	if c.MaxRedeals < 0 {
		return fmt.Errorf("max_redeals must not be negative: %d", c.MaxRedeals)
	}
	return nil
}

// LoadFromEnv loads the file named by PITCH_CONFIG, or the default config
// when it is unset, then applies the remaining environment overrides.
func LoadFromEnv(logger runtime.Logger) (*GameConfig, error) {
	c := Default()
	if path := strings.TrimSpace(os.Getenv("PITCH_CONFIG")); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		c = loaded
	}
	ApplyEnv(c, logger)
	return c, nil
}

// ApplyEnv overrides hands, seed and debug from PITCH_HANDS, PITCH_SEED and
// PITCH_DEBUG. Invalid values are logged and ignored.
func ApplyEnv(c *GameConfig, logger runtime.Logger) {
	if v := strings.TrimSpace(os.Getenv("PITCH_HANDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Hands = n
		} else {
			logger.Warn("ApplyEnv: invalid PITCH_HANDS=%q, using %d", v, c.Hands)
		}
	}
	if v := strings.TrimSpace(os.Getenv("PITCH_SEED")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		} else {
			logger.Warn("ApplyEnv: invalid PITCH_SEED=%q, using %d", v, c.Seed)
		}
	}
	if v := strings.TrimSpace(os.Getenv("PITCH_DEBUG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		} else {
			logger.Warn("ApplyEnv: invalid PITCH_DEBUG=%q, using %t", v, c.Debug)
		}
	}
}

// AgentConfigs resolves every seat's personality and strength table.
func (c *GameConfig) AgentConfigs(logger runtime.Logger) []bot.AgentConfig {
	out := make([]bot.AgentConfig, 0, len(c.Players))
	for seat, p := range c.Players {
		s := p.Strategies
		table := bot.DefaultStrengthTable()
		if s.BidStrengthFile != "" {
			table = LoadStrengthTable(s.BidStrengthFile, s.BidStrengthSheet, logger)
		}
		out = append(out, bot.AgentConfig{
			Name:         p.Name,
			Seat:         seat,
			BidStrategy:  s.BidStrategy,
			PlayStrategy: s.PlayStrategy,
			Personality:  bot.Personality{Aggressiveness: s.Aggressiveness, Restraint: s.Restraint},
			Strengths:    table,
		})
	}
	return out
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the process-wide config once from path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		cfg, loadErr = Load(path)
	})
	return loadErr
}

// GetGameConfig returns the process-wide config, or the default when none loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return Default()
	}
	return cfg
}
