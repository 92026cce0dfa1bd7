package main

import (
	"net/http"

	"github.com/cbsinteractive/timecode-api/config"
	"github.com/cbsinteractive/timecode-api/db"
	"github.com/cbsinteractive/timecode-api/service"
	"github.com/cbsinteractive/timecode-api/service/exceptions"
	"github.com/google/gops/agent"
)

func main() {
	agent.Listen(agent.Options{})
	defer agent.Close()

	cfg := config.LoadConfig()
	logger, err := cfg.Logger()
	if err != nil {
		panic(err)
	}

	reporter, err := exceptions.FromDSN(cfg.SentryDSN, cfg.Environment)
	if err != nil {
		logger.Fatalf("configuring exception reporter: %v", err)
	}

	dbc, err := db.NewClient(cfg.Redis)
	if err != nil {
		logger.Fatalf("connecting to storage: %v", err)
	}

	logger.WithField("addr", cfg.ListenAddr).Info("timecode api listening")
	err = http.ListenAndServe(cfg.ListenAddr, service.Server{
		Config:      cfg,
		DB:          dbc,
		Logger:      logger,
		ErrReporter: reporter,
	})
	if err != nil {
		logger.Fatal("server encountered a fatal error: ", err)
	}
}
