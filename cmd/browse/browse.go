// Package browse starts the interactive terminal UI
package browse

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/ui"
)

var demo bool

// Cmd represents the browse command
var Cmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the ledger interactively",
	Long:  `Browse the ledger in a full-screen terminal UI: overview with charts, sortable and filterable history, transaction entry and product management.`,
	Run:   browseFunc,
}

func init() {
	Cmd.Flags().BoolVar(&demo, "demo", false, "Seed sample transactions into an empty ledger")
}

func browseFunc(cmd *cobra.Command, args []string) {
	if demo {
		if err := root.Ledger.SeedDemo(); err != nil {
			root.Log.Fatalf("Error seeding demo data: %v", err)
		}
	}

	model := ui.New(root.Ledger, root.Store, root.Cfg)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		root.Log.Fatalf("Error running UI: %v", err)
	}
}
