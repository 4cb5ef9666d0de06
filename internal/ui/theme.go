package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles for one color scheme. Two schemes exist,
// dark and light, and the active one is persisted through the store.
type Theme struct {
	Name string

	Title       lipgloss.Style
	NavActive   lipgloss.Style
	NavInactive lipgloss.Style
	StatCard    lipgloss.Style
	StatLabel   lipgloss.Style
	StatValue   lipgloss.Style
	TableHeader lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Placeholder lipgloss.Style
	Help        lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldActive lipgloss.Style
	Modal       lipgloss.Style

	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// DarkTheme is the default scheme
func DarkTheme() Theme {
	return Theme{
		Name:        "dark",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		NavActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")).Padding(0, 1),
		NavInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		StatCard:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 2).MarginRight(1),
		StatLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatValue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("83")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		RowSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FieldLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FieldActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Modal:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("203")).Padding(1, 3),

		ToastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("83")),
		ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// LightTheme is the alternate scheme
func LightTheme() Theme {
	return Theme{
		Name:        "light",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		NavActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("26")).Padding(0, 1),
		NavInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1),
		StatCard:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 2).MarginRight(1),
		StatLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StatValue:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Row:         lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		RowSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("26")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		FieldLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FieldActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Modal:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("160")).Padding(1, 3),

		ToastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
		ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
}

// ThemeByName resolves a persisted theme name, defaulting to dark
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
