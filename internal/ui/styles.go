package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Base        lipgloss.Style
	Border      lipgloss.Style
	Title       lipgloss.Style
	Status      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabDivider  lipgloss.Style
	Help        lipgloss.Style
	TableStyles TableStyles
	JSON        JSONStyles
}

type TableStyles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
}

type JSONStyles struct {
	Key    lipgloss.Style
	String lipgloss.Style
	Number lipgloss.Style
	Bool   lipgloss.Style
	Null   lipgloss.Style
	Punct  lipgloss.Style
}

func NewStyles(dark bool) Styles {
	s := Styles{}
	if dark {
		s.Base = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
		s.Border = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("60"))
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("81")).Padding(0, 1)
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
		s.JSON = JSONStyles{
			Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			String: lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
			Number: lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
			Bool:   lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
			Null:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			Punct:  lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		}
	} else {
		s.Base = lipgloss.NewStyle()
		s.Border = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("12"))
		s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27"))
		s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("27")).Padding(0, 1)
		s.TabInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
		s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.JSON = JSONStyles{
			Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
			String: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			Number: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			Bool:   lipgloss.NewStyle().Foreground(lipgloss.Color("90")),
			Null:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Punct:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	}
	s.TabDivider = s.Help
	s.TableStyles = TableStyles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("25")).PaddingRight(1),
		Cell:     lipgloss.NewStyle().PaddingRight(1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("170")),
	}
	return s
}
