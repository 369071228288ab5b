package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/woozymasta/geocodec/internal/config"
	"github.com/woozymasta/geocodec/internal/logger"
	"github.com/woozymasta/geocodec/internal/server"
	"github.com/woozymasta/geocodec/pkg/geojson"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"   env:"CONFIG_FILE"    description:"Path to configuration file, built-in defaults if empty"`
	Addr       string `short:"a" long:"addr"     env:"LISTEN_ADDRESS" description:"Address to listen on"    default:"0.0.0.0"`
	Port       int    `short:"p" long:"port"     env:"LISTEN_PORT"    description:"Port to listen on"       default:"8080"`
	MaxBody    int64  `short:"m" long:"max-body" env:"MAX_BODY"       description:"Request body limit in bytes" default:"8388608"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
	}

	srvCtx, err := server.NewServerContext(cfg, geojson.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build geometry adapter")
	}
	if opts.MaxBody > 0 {
		srvCtx.MaxBody = opts.MaxBody
	}

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Int("srid", cfg.SRID).
		Int64("max_body", srvCtx.MaxBody).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, srvCtx.Handler(log.Logger)); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
