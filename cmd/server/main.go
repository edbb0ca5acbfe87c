// Package main is the entry point for the blheli2rtttl API server
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/james-see/blheli2rtttl/pkg/api"
	"github.com/james-see/blheli2rtttl/pkg/config"
	"github.com/james-see/blheli2rtttl/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "YAML config file")
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *port > 0 {
		cfg.Server.Port = *port
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting blheli2rtttl API server",
		zap.Int("port", cfg.Server.Port),
		zap.String("device", cfg.Device),
		zap.String("swagger", fmt.Sprintf("http://localhost:%d/swagger/index.html", cfg.Server.Port)),
	)

	if err := api.StartServer(cfg.Server.Port, api.WithLogger(logger), api.WithDefaultDevice(cfg.Device)); err != nil {
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}
}
