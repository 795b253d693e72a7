package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	groupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).MarginTop(1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(26)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)
