// Package report generates the aggregate sales report
package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fajarubianto5/app-penjualan/cmd/root"
	"github.com/fajarubianto5/app-penjualan/internal/report"
)

var (
	format string
	output string
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a sales report",
	Long:  `Generate the aggregate sales report (total revenue, count, average ticket, top product) as text, JSON or YAML.`,
	Run:   reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Report format: text, json or yaml")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
}

func reportFunc(cmd *cobra.Command, args []string) {
	generator := report.NewGenerator(root.Log)
	data, err := generator.Generate(root.Ledger.Summary(), format)
	if err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}

	if output == "" {
		fmt.Print(string(data))
		return
	}

	if err := os.WriteFile(output, data, 0600); err != nil {
		root.Log.Fatalf("Error writing report: %v", err)
	}
	fmt.Printf("Laporan dibuat: %s\n", output)
}
