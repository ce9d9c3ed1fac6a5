package site

import (
	"context"
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

// StageFn is one build phase. Phases run strictly in sequence; the first
// error aborts the whole build.
type StageFn func(ctx context.Context, bs *BuildState) error

// StageDef names a build phase.
type StageDef struct {
	Name string
	Fn   StageFn
}

// RunStages executes stages in order, recording timing and stopping on
// the first fatal error.
func RunStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	for _, st := range stages {
		select {
		case <-ctx.Done():
			slog.Error("Build canceled", logfields.Stage(st.Name))
			return ctx.Err()
		default:
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[st.Name] = dur

		if err != nil {
			slog.Error("Stage failed", logfields.Stage(st.Name), logfields.Error(err))
			return err
		}
		slog.Debug("Stage complete",
			logfields.Stage(st.Name),
			logfields.DurationMS(float64(dur.Microseconds())/1000.0))
	}
	return nil
}
