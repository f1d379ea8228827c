package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/adest/scenariorunner/scenario"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Padding(0, 1)

	styleStep = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	styleErr = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Padding(0, 1)

	styleOK = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Padding(0, 1)

	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)

// scenarioEventMsg wraps a scenario.Event as a bubbletea message.
type scenarioEventMsg struct{ event scenario.Event }

// executionDoneMsg is sent once Scenario.Execute returns.
type executionDoneMsg struct{ err error }

type model struct {
	scenario      *scenario.Scenario
	progress      progress.Model
	output        viewport.Model
	outputContent string
	status        string
	stepDesc      string
	copying       string
	done          bool
	err           error
}

func newModel(s *scenario.Scenario) model {
	return model{
		scenario: s,
		progress: progress.New(progress.WithDefaultGradient()),
		output:   viewport.New(80, 10),
		status:   "connecting...",
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 4
		m.output.Width = msg.Width - 4
		m.output.Height = msg.Height - 8
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd

	case scenarioEventMsg:
		return m.applyEvent(msg.event)

	case progress.FrameMsg:
		updated, cmd := m.progress.Update(msg)
		m.progress = updated.(progress.Model)
		return m, cmd

	case executionDoneMsg:
		m.done = true
		m.err = msg.err
		if msg.err == nil {
			m.status = "scenario completed"
		} else {
			m.status = "scenario failed"
		}
		return m, nil
	}
	return m, nil
}

func (m model) applyEvent(e scenario.Event) (tea.Model, tea.Cmd) {
	switch ev := e.(type) {
	case scenario.ScenarioStartedEvent:
		m.status = "scenario started"
	case scenario.SessionCreatedEvent:
		m.status = "session established"
	case scenario.StepStartedEvent:
		m.stepDesc = fmt.Sprintf("[%d/%d] %s", ev.Index+1, ev.Total, ev.Description)
	case scenario.RemoteSudoStartedEvent:
		m.appendOutput("$ " + ev.Command)
	case scenario.RemoteSudoOutputEvent:
		m.appendOutput(ev.Output)
	case scenario.SftpCopyStartedEvent:
		m.copying = fmt.Sprintf("%s -> %s", ev.Source, ev.Destination)
		return m, m.progress.SetPercent(0)
	case scenario.SftpCopyProgressEvent:
		var percent float64
		if ev.Total > 0 {
			percent = float64(ev.Current) / float64(ev.Total)
		}
		m.appendOutput(fmt.Sprintf("%s / %s", humanize.Bytes(uint64(ev.Current)), humanize.Bytes(uint64(ev.Total))))
		return m, m.progress.SetPercent(percent)
	case scenario.SftpCopyCompletedEvent:
		m.copying = ""
		return m, m.progress.SetPercent(1)
	case scenario.ErrorEvent:
		m.appendOutput("error: " + ev.Error)
	case scenario.ScenarioCompletedEvent:
		m.status = "scenario completed"
	}
	return m, nil
}

func (m *model) appendOutput(line string) {
	if m.outputContent != "" {
		m.outputContent += "\n"
	}
	m.outputContent += line
	m.output.SetContent(m.outputContent)
	m.output.GotoBottom()
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("scenariorunner") + "\n")
	b.WriteString(styleStep.Render(m.stepDesc) + "\n")
	if m.copying != "" {
		b.WriteString(m.copying + "\n")
		b.WriteString(m.progress.View() + "\n")
	}
	b.WriteString(m.output.View() + "\n")

	if m.done {
		if m.err != nil {
			b.WriteString(styleErr.Render(m.status+": "+m.err.Error()) + "\n")
		} else {
			b.WriteString(styleOK.Render(m.status) + "\n")
		}
	} else {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(styleHelp.Render("q: quit"))
	return b.String()
}
