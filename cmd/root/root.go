// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/internal/config"
	"github.com/fajarubianto5/app-penjualan/internal/export"
	"github.com/fajarubianto5/app-penjualan/internal/ledger"
	"github.com/fajarubianto5/app-penjualan/internal/store"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Store is the persistence layer rooted at the data directory
	Store *store.Store

	// Ledger is the opened application state all commands operate on
	Ledger *ledger.Ledger

	// DataDir overrides the configured data directory when set
	DataDir string

	// Yes skips confirmation prompts on destructive commands
	Yes bool

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "app-penjualan",
		Short: "Pencatat penjualan harian: transaksi, produk, laporan dan export.",
		Long: `app-penjualan is a single-user sales ledger. It records transactions,
maintains a product catalog and renders summaries, reports, CSV exports and
JSON backups from a local data directory.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to app-penjualan!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			dir := DataDir
			if dir == "" {
				dir = Cfg.DataDirectory()
			}

			// Propagate the configured logger to packages holding their own
			store.SetLogger(Log)
			ledger.SetLogger(Log)
			export.SetLogger(Log)

			Store = store.New(dir)
			Ledger = ledger.Open(Store)
		},
	}
)

// Init initializes the root command and all persistent flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&DataDir, "data", "D", "", "Data directory (default ~/.app-penjualan/data)")
	Cmd.PersistentFlags().BoolVarP(&Yes, "yes", "y", false, "Skip confirmation prompts")
}

// CSVOptions builds the export options from the loaded configuration
func CSVOptions() export.Options {
	opts := export.DefaultOptions()
	if Cfg != nil && len(Cfg.CSV.Delimiter) > 0 {
		opts.Delimiter = []rune(Cfg.CSV.Delimiter)[0]
		opts.QuoteAll = Cfg.CSV.QuoteAll
	}
	return opts
}
