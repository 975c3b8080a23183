package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"git.sr.ht/~rockorager/vxspin"
	"git.sr.ht/~rockorager/vxspin/bubble"
	"git.sr.ht/~rockorager/vxspin/internal/config"
	"git.sr.ht/~rockorager/vxspin/log"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

func newTeaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tea",
		Short: "Show the spinners in a Bubble Tea program",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			closeLog, err := setupLogging(cfg, false)
			if err != nil {
				return err
			}
			defer closeLog()

			m, err := newTeaModel(cfg)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

type teaModel struct {
	spinner bubble.Model
}

func newTeaModel(cfg *config.Config) (teaModel, error) {
	fg, err := cfg.Foreground()
	if err != nil {
		return teaModel{}, err
	}
	bg, err := cfg.Background()
	if err != nil {
		return teaModel{}, err
	}
	s := bubble.New(cfg.SpinnerValue())
	s.Foreground = fg
	s.Background = bg
	s.FPS = cfg.Render.FPS
	s.Oversample = cfg.Render.Oversample
	return teaModel{spinner: s}, nil
}

func (m teaModel) Init() tea.Cmd {
	return m.spinner.Init()
}

func (m teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right":
			m.setStyle(m.spinner.Spinner.Style + 1)
			return m, nil
		case "shift+tab", "left":
			m.setStyle(m.spinner.Spinner.Style + vxspin.Style(len(vxspin.Styles())-1))
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *teaModel) setStyle(style vxspin.Style) {
	style %= vxspin.Style(len(vxspin.Styles()))
	m.spinner.Spinner = m.spinner.Spinner.WithStyle(style)
	log.Debug("selected %s", style)
}

func (m teaModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("vxspin " + m.spinner.Spinner.Style.String()))
	sb.WriteString("\n\n")
	sb.WriteString(m.spinner.View())
	sb.WriteString("\n\n")
	sb.WriteString(helpStyle.Render("tab next  q quit"))
	return sb.String()
}
