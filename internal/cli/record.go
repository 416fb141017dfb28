package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/devbydaniel/meetnotes/internal/audio"
	"github.com/devbydaniel/meetnotes/internal/domain/meeting/usecases"
	"github.com/devbydaniel/meetnotes/internal/output"
	"github.com/devbydaniel/meetnotes/internal/tui"
)

const pollTimeout = time.Second

func NewRecordCmd(deps *Dependencies) *cobra.Command {
	var plain bool
	var device string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a meeting with live transcription",
		Long:  "Record from the microphone, transcribing in fixed 10-second increments. Stop with q (or Ctrl+C in plain mode); the final partial window is always transcribed before the session closes.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if device == "" {
				device = deps.Config.CaptureDevice
			}

			source, err := audio.NewFFmpegSource(device)
			if err != nil {
				return err
			}

			session, err := deps.App.Record.Start()
			if err != nil {
				_ = source.Close()
				return err
			}

			if plain {
				return runPlainRecording(deps, session, source)
			}
			return runTUIRecording(deps, session, source)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print progress as plain lines instead of the live view")
	cmd.Flags().StringVarP(&device, "device", "d", "", "Capture device (default: platform default input)")

	return cmd
}

func runTUIRecording(deps *Dependencies, session *usecases.RecordingSession, source audio.CaptureSource) error {
	formatter := output.NewFormatter(os.Stdout)

	model := tui.New(session, source)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		_ = source.Close()
		return err
	}

	if m, ok := final.(tui.Model); ok && m.Err != nil {
		if errors.Is(m.Err, usecases.ErrTranscription) {
			formatter.Warning("final transcription failed: " + m.Err.Error())
		} else {
			return m.Err
		}
	}

	formatter.RecordingStopped(session.Duration())
	formatter.SessionSaved(deps.App.Store.AudioPath(session.ID()))
	return nil
}

func runPlainRecording(deps *Dependencies, session *usecases.RecordingSession, source audio.CaptureSource) error {
	formatter := output.NewFormatter(os.Stdout)
	formatter.RecordingStarted(string(session.ID()))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	ctx := context.Background()

loop:
	for {
		select {
		case <-sig:
			break loop
		default:
		}

		batch, err := source.ReadBatch(pollTimeout)
		switch {
		case errors.Is(err, audio.ErrBatchTimeout):
			continue
		case errors.Is(err, audio.ErrStreamClosed):
			break loop
		case err != nil:
			_ = source.Close()
			return err
		}

		before := session.Transcript()
		if err := session.OnFrames(ctx, batch); err != nil {
			if errors.Is(err, usecases.ErrTranscription) {
				// Window is retained; retried on the next cycle.
				formatter.Warning(err.Error())
				continue
			}
			_ = source.Close()
			return err
		}
		if session.Transcript() != before {
			formatter.TranscriptFlushed(session.Duration())
		}
	}

	_ = source.Close()

	if err := session.Stop(ctx); err != nil && !errors.Is(err, usecases.ErrSessionClosed) {
		if errors.Is(err, usecases.ErrTranscription) {
			formatter.Warning("final transcription failed: " + err.Error())
		} else {
			return err
		}
	}

	formatter.RecordingStopped(session.Duration())
	formatter.SessionSaved(deps.App.Store.AudioPath(session.ID()))
	return nil
}
