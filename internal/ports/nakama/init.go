package nakama

import (
	"context"
	"database/sql"
	"os"

	"github.com/heroiclabs/nakama-common/runtime"

	"pitch/internal/config"
)

// InitModule wires the Pitch RPCs into the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if path := os.Getenv(configPathEnv); path != "" {
		if err := config.LoadGameConfig(path); err != nil {
			logger.Warn("InitModule: %v; using default players", err)
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Pitch Go module loaded.")
	return nil
}
