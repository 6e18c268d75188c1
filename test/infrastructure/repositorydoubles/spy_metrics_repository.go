//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// SpyMetricsRepository implements repositories.MetricsRepository as a spy.
type SpyMetricsRepository struct {
	WriteErr error

	// spy: observed results, finished phases and written paths
	Observed     []entities.Result
	FinishedRuns []string
	WrittenFiles []string
}

var _ repositories.MetricsRepository = (*SpyMetricsRepository)(nil)

func (s *SpyMetricsRepository) ObserveResult(_ string, result entities.Result) {
	s.Observed = append(s.Observed, result)
}

func (s *SpyMetricsRepository) MarkRunFinished(phase string) {
	s.FinishedRuns = append(s.FinishedRuns, phase)
}

func (s *SpyMetricsRepository) WriteTextfile(path string) error {
	s.WrittenFiles = append(s.WrittenFiles, path)
	return s.WriteErr
}

// DummyMetricsRepository is a no-op implementation of repositories.MetricsRepository.
type DummyMetricsRepository struct{}

var _ repositories.MetricsRepository = (*DummyMetricsRepository)(nil)

func (d *DummyMetricsRepository) ObserveResult(_ string, _ entities.Result) {}

func (d *DummyMetricsRepository) MarkRunFinished(_ string) {}

func (d *DummyMetricsRepository) WriteTextfile(_ string) error { return nil }
