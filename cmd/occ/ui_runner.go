package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"occ/internal/driver"
	"occ/internal/pipeline"
	"occ/internal/ui"
)

type checkOutcome struct {
	report *driver.CheckReport
	err    error
}

// runCheckWithUI runs CheckDir while a Bubble Tea program renders its events.
func runCheckWithUI(ctx context.Context, title, dir string, files []string, opts driver.CheckOptions) (*driver.CheckReport, error) {
	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = pipeline.ChannelSink{Ch: events}
		report, err := driver.CheckDir(ctx, dir, optsCopy)
		outcomeCh <- checkOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// UI мог выйти раньше (Ctrl-C): дочитываем события, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
