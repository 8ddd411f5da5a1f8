package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/GCrispino/workout-api/internal/banco"
	"github.com/GCrispino/workout-api/internal/config"
	"github.com/GCrispino/workout-api/internal/console"
	"github.com/GCrispino/workout-api/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "path to the bank config file")
	flag.Parse()

	cfg, err := config.LoadBankConfig(*configPath)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log, err := logging.New(cfg.LogLevel, logging.FormatText, os.Stderr)
	if err != nil {
		logrus.Fatalf("failed to build logger: %v", err)
	}

	bank := banco.New(banco.Options{
		Agency:         cfg.Agency,
		Limit:          cfg.Limit,
		MaxWithdrawals: cfg.MaxWithdrawals,
	})

	if err := console.New(bank, os.Stdin, os.Stdout, log).Run(); err != nil {
		log.Fatalf("console: %v", err)
	}
}
