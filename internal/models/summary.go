package models

import "github.com/shopspring/decimal"

// Summary is the aggregate snapshot shown on the overview and in reports.
// It is recomputed on demand from the full transaction list, never cached.
type Summary struct {
	TotalRevenue  decimal.Decimal `json:"total" yaml:"total"`
	Count         int             `json:"count" yaml:"count"`
	AverageTicket decimal.Decimal `json:"avg" yaml:"avg"`
	TopProduct    string          `json:"top" yaml:"top"`
}
