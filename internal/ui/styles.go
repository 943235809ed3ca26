package ui

import "github.com/charmbracelet/lipgloss"

type styleKind uint8

const (
	stylePlain styleKind = iota
	styleTitle
	styleHeader
	styleCount
	styleBorder
	styleHoverBorder
	styleLabel
	styleClose
	styleAdd
	styleInput
	styleGhost
	styleNotice
	styleHint
)

var styles = map[styleKind]lipgloss.Style{
	stylePlain:       lipgloss.NewStyle(),
	styleTitle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	styleHeader:      lipgloss.NewStyle().Bold(true),
	styleCount:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	styleBorder:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	styleHoverBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	styleLabel:       lipgloss.NewStyle(),
	styleClose:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	styleAdd:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	styleInput:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")),
	styleGhost:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	styleNotice:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	styleHint:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}
