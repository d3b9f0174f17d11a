package app

import "charm.land/lipgloss/v2"

var (
	headerStyle              = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle                = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle              = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fieldLabelStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	fieldFocusedLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true)
	prayerDoneStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("70")).Bold(true)
	prayerPendingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	selectedStyle            = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	dividerStyle             = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	entryMetaStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true)
	entryMetaSelectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true)
	entryTextStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	entrySelectedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	emptyStateStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	modalFrameStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
	modalTitleStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	dialogHeaderStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	dialogBodyStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	confirmDialogBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208"))
	hotkeyKeyStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Bold(true)
)

var (
	toastInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("29")).Bold(true)
	toastWarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("136")).Bold(true)
	toastErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true)
)
