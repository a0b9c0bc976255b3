// Package custody parses custody server flags and starts the account service.
package custody

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/louisbranch/custody/internal/platform/cmd"
	"github.com/louisbranch/custody/internal/platform/logging"
	server "github.com/louisbranch/custody/internal/services/custody/app"
	"github.com/louisbranch/custody/internal/services/custody/auth"
)

// Config holds custody command configuration.
type Config struct {
	Port        int    `env:"CUSTODY_PORT"         envDefault:"8090"`
	EventsAddr  string `env:"CUSTODY_EVENTS_ADDR"  envDefault:"localhost:8092"`
	DBPath      string `env:"CUSTODY_DB_PATH"      envDefault:"data/custody.db"`
	GenesisPath string `env:"CUSTODY_GENESIS_PATH" envDefault:"genesis.toml"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The custody gRPC server port")
	fs.StringVar(&cfg.EventsAddr, "events-addr", cfg.EventsAddr, "Event stream listen address (empty disables it)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the sqlite journal")
	fs.StringVar(&cfg.GenesisPath, "genesis", cfg.GenesisPath, "Path to the genesis TOML file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the custody account service.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.New(entrypoint.ServiceCustody)
	serverCfg := server.Config{
		Port:        cfg.Port,
		EventsAddr:  cfg.EventsAddr,
		DBPath:      cfg.DBPath,
		GenesisPath: cfg.GenesisPath,
	}
	verifier, ok, err := auth.LoadVerifierConfigFromEnv(time.Now)
	if err != nil {
		return err
	}
	if ok {
		serverCfg.Verifier = &verifier
	} else {
		logger.Warn().Str("env", auth.EnvCallerPublicKey).Msg("no caller key configured, mutations are disabled")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCustody, func(ctx context.Context) error {
		return server.Run(ctx, serverCfg, logger)
	})
}
