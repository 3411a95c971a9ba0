package main

import (
	"flag"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"pitch/internal/app"
	"pitch/internal/bot"
	"pitch/internal/config"
	"pitch/internal/ports/console"
)

func main() {
	_ = godotenv.Load()

	var (
		configPath string
		hands      int
		seed       int64
		verbose    bool
		debug      bool
	)
	flag.StringVar(&configPath, "c", "", "game config file (overrides PITCH_CONFIG)")
	flag.StringVar(&configPath, "config", "", "game config file (overrides PITCH_CONFIG)")
	flag.IntVar(&hands, "hands", 0, "number of hands to play")
	flag.Int64Var(&seed, "seed", 0, "random seed; unset picks one from the clock")
	flag.BoolVar(&verbose, "v", false, "print discards and every card played")
	flag.BoolVar(&verbose, "verbose", false, "print discards and every card played")
	flag.BoolVar(&debug, "d", false, "print debug logs")
	flag.BoolVar(&debug, "debug", false, "print debug logs")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	bootLogger := console.NewLogger(debug)
	cfg, err := loadConfig(configPath, bootLogger)
	if err != nil {
		pterm.Error.Printfln("pitchsim: %v", err)
		os.Exit(1)
	}
	if set["hands"] {
		cfg.Hands = hands
	}
	if set["seed"] {
		cfg.Seed = seed
	}
	cfg.Verbose = cfg.Verbose || verbose
	cfg.Debug = cfg.Debug || debug
	_, envErr := strconv.ParseInt(strings.TrimSpace(os.Getenv("PITCH_SEED")), 10, 64)
	envSeed := envErr == nil
	cfg.Seed = resolveSeed(cfg.Seed, set["seed"] || envSeed, time.Now)

	logger := console.NewLogger(cfg.Debug)
	logger.Debug("pitchsim: seed %d, %d hands", cfg.Seed, cfg.Hands)

	rng := rand.New(rand.NewSource(cfg.Seed))
	reg := bot.NewRegistry()
	var players []*bot.Agent
	for _, ac := range cfg.AgentConfigs(logger) {
		a, err := bot.NewAgent(reg, ac, rng, logger)
		if err != nil {
			logger.Error("pitchsim: %v", err)
			os.Exit(1)
		}
		players = append(players, a)
	}
	if err := console.RenderPlayers(os.Stdout, players); err != nil {
		logger.Warn("pitchsim: render players: %v", err)
	}

	svc := app.NewService(rng, logger)
	svc.MaxRedeals = cfg.MaxRedeals
	svc.SetSink(console.NewPrinter(os.Stdout, cfg.Verbose))

	res, _, err := svc.PlayHands(players, cfg.Hands)
	if err != nil {
		logger.Error("pitchsim: %v", err)
	}
	if err := console.RenderMatch(os.Stdout, players, res); err != nil {
		logger.Warn("pitchsim: render results: %v", err)
	}
	if err != nil {
		os.Exit(1)
	}
}

// resolveSeed keeps a pinned seed, including 0. An unpinned zero seed is
// replaced from the clock.
func resolveSeed(seed int64, pinned bool, now func() time.Time) int64 {
	if seed != 0 || pinned {
		return seed
	}
	return now().UnixNano()
}

// loadConfig reads path when given, otherwise PITCH_CONFIG or the defaults,
// then applies the PITCH_* overrides.
func loadConfig(path string, logger *console.Logger) (*config.GameConfig, error) {
	if path == "" {
		return config.LoadFromEnv(logger)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg, logger)
	return cfg, nil
}
