package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"occ/internal/trace"
)

var activeTracer trace.Tracer

// setupTracing creates the tracer described by s and attaches it to the
// command context.
func setupTracing(cmd *cobra.Command, s *settings) error {
	level, err := trace.ParseLevel(s.Trace.Level)
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(s.Trace.Format)
	if err != nil {
		return err
	}
	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: s.Trace.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))
	return nil
}

func closeTracing(cmd *cobra.Command) {
	if activeTracer == nil {
		return
	}
	if err := activeTracer.Flush(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
	}
	if err := activeTracer.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
	}
	activeTracer = nil
}
