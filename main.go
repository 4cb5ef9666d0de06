package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/fajarubianto5/app-penjualan/cmd/add"
	"github.com/fajarubianto5/app-penjualan/cmd/backup"
	"github.com/fajarubianto5/app-penjualan/cmd/browse"
	exportcmd "github.com/fajarubianto5/app-penjualan/cmd/export"
	"github.com/fajarubianto5/app-penjualan/cmd/list"
	"github.com/fajarubianto5/app-penjualan/cmd/product"
	"github.com/fajarubianto5/app-penjualan/cmd/remove"
	reportcmd "github.com/fajarubianto5/app-penjualan/cmd/report"
	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/cmd/stats"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logging happens
	configureLogLevelDirectly()

	// 3. Initialize root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(add.Cmd)
	root.Cmd.AddCommand(remove.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(product.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(reportcmd.Cmd)
	root.Cmd.AddCommand(exportcmd.Cmd)
	root.Cmd.AddCommand(backup.Cmd)
	root.Cmd.AddCommand(browse.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances created before the full configuration is loaded
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
