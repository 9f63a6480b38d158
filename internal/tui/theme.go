package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	Gold        = lipgloss.Color("#FFD700")
	Red         = lipgloss.Color("#FF4136")
	LightGray   = lipgloss.Color("#aaaaaa")
)

// Styles groups the lipgloss styles used by clv output. Only single-line
// strings go through them; multi-line blocks are padded by lipgloss.
type Styles struct {
	Word    lipgloss.Style
	Lang    lipgloss.Style
	Ordinal lipgloss.Style
	Label   lipgloss.Style
	Tag     lipgloss.Style
	Cloze   lipgloss.Style
	Success lipgloss.Style
	Retry   lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles is the green terminal theme.
func DefaultStyles() Styles {
	return Styles{
		Word: lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true),
		Lang: lipgloss.NewStyle().
			Foreground(DarkGreen),
		Ordinal: lipgloss.NewStyle().
			Foreground(Cyan),
		Label: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),
		Tag: lipgloss.NewStyle().
			Foreground(LightGray).
			Italic(true),
		Cloze: lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),
		Retry: lipgloss.NewStyle().
			Foreground(Gold),
		Error: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(DimGreen),
	}
}

// PlainStyles renders every string unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Word:    plain,
		Lang:    plain,
		Ordinal: plain,
		Label:   plain,
		Tag:     plain,
		Cloze:   plain,
		Success: plain,
		Retry:   plain,
		Error:   plain,
		Help:    plain,
	}
}
