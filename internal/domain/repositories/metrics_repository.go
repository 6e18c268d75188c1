package repositories

import (
	"github.com/rios0rios0/depman/internal/domain/entities"
)

// MetricsRepository records per-dependency outcomes and exports them after a run.
type MetricsRepository interface {
	ObserveResult(phase string, result entities.Result)
	MarkRunFinished(phase string)
	WriteTextfile(path string) error
}
