package main

import (
	"fmt"
	"os"

	"dental_lab/internal/cli"
	"dental_lab/internal/config"
	"dental_lab/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, "text")
	log.SetOutput(os.Stderr)

	if err := cli.NewRootCmd(cli.NewServicesFactory(cfg, log)).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
