package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/beeper/websearch-mcp/pkg/server"
)

// Information to find out exactly which commit the server was built from.
// These are filled at build time with the -X linker flag.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "path to config file (yaml or json5)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("websearch-mcp %s (%s, commit %s, built %s)\n", version, Tag, Commit, BuildTime)
		return
	}

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "websearch-mcp: %v\n", err)
		os.Exit(1)
	}
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log)
	if err := srv.Run(ctx, version); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("Transport failed")
		os.Exit(1)
	}
}

// newLogger builds the process logger. Logs go to stderr: stdout belongs to
// the MCP stdio transport.
func newLogger(cfg *server.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if cfg.Logging.Pretty != nil && *cfg.Logging.Pretty {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(level).With().Timestamp().Logger()
}
