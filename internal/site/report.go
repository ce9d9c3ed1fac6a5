package site

import (
	"time"

	"github.com/google/uuid"
)

// BuildReport summarizes one build for logging and inspection.
type BuildReport struct {
	BuildID         string
	StartedAt       time.Time
	Duration        time.Duration
	StageDurations  map[string]time.Duration
	DocumentsLoaded int
	RoutesWritten   int
}

func NewBuildReport() *BuildReport {
	return &BuildReport{
		BuildID:        uuid.NewString(),
		StartedAt:      time.Now().UTC(),
		StageDurations: make(map[string]time.Duration),
	}
}

// Finish stamps the total duration.
func (r *BuildReport) Finish() {
	r.Duration = time.Since(r.StartedAt)
}
