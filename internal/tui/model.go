package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devbydaniel/meetnotes/internal/audio"
	"github.com/devbydaniel/meetnotes/internal/domain/meeting/usecases"
	"github.com/devbydaniel/meetnotes/internal/output"
)

const pollTimeout = time.Second

// Model is the live recording view: a growing transcript over an
// active capture stream. Frame batches are processed inside Update, so
// a transcription flush briefly pauses the UI; the capture source's
// internal queue absorbs the frames that arrive in the meantime.
type Model struct {
	session *usecases.RecordingSession
	source  audio.CaptureSource

	viewport viewport.Model
	spinner  spinner.Model
	ready    bool
	width    int
	height   int

	elapsed  time.Duration
	flushes  int
	flushErr string
	stopping bool

	// Err holds the failure that ended the session, if any.
	Err error
}

func New(session *usecases.RecordingSession, source audio.CaptureSource) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		session: session,
		source:  source,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(readBatch(m.source), tick(), m.spinner.Tick)
}

func readBatch(source audio.CaptureSource) tea.Cmd {
	return func() tea.Msg {
		batch, err := source.ReadBatch(pollTimeout)
		switch {
		case errors.Is(err, audio.ErrBatchTimeout):
			return BatchTimeoutMsg{}
		case errors.Is(err, audio.ErrStreamClosed):
			return StreamClosedMsg{}
		case err != nil:
			return CaptureErrorMsg{Err: err}
		}
		return BatchMsg{Frames: batch}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.session.Transcript())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			if !m.stopping {
				m.stopping = true
				// Closing the source ends the stream; the final
				// flush happens on StreamClosedMsg.
				_ = m.source.Close()
			}
			return m, nil
		case "up", "k":
			m.viewport.LineUp(1)
			return m, nil
		case "down", "j":
			m.viewport.LineDown(1)
			return m, nil
		}
		return m, nil

	case BatchMsg:
		before := len(m.session.Transcript())
		err := m.session.OnFrames(context.Background(), msg.Frames)
		switch {
		case errors.Is(err, usecases.ErrTranscription):
			m.flushErr = err.Error()
		case err != nil:
			m.Err = err
			return m, tea.Quit
		default:
			if len(m.session.Transcript()) > before {
				m.flushes++
				m.flushErr = ""
			}
		}
		if m.ready {
			m.viewport.SetContent(m.session.Transcript())
			m.viewport.GotoBottom()
		}
		return m, readBatch(m.source)

	case BatchTimeoutMsg:
		return m, readBatch(m.source)

	case StreamClosedMsg:
		if err := m.session.Stop(context.Background()); err != nil {
			m.Err = err
		}
		return m, tea.Quit

	case CaptureErrorMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case TickMsg:
		m.elapsed = m.session.Duration()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "starting capture..."
	}

	dot := recordingDotStyle.Render("●")
	state := "recording"
	if m.stopping {
		state = "stopping"
	}
	header := fmt.Sprintf("%s %s  %s  %s",
		dot,
		titleStyle.Render("meetnotes"),
		statusStyle.Render(string(m.session.ID())),
		statusStyle.Render(fmt.Sprintf("%s · %s · %d flushes", state, output.FormatDuration(m.elapsed), m.flushes)),
	)

	status := ""
	if m.flushErr != "" {
		status = errorStyle.Render("transcription failed, retrying next cycle")
	} else if m.session.Transcript() == "" {
		status = m.spinner.View() + statusStyle.Render(" start talking...")
	}

	footer := strings.Join([]string{
		footerKeyStyle.Render("q") + footerDescStyle.Render(" stop"),
		footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" scroll"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		status,
		"",
		m.viewport.View(),
		"",
		footer,
	)
}
