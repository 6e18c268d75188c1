//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depman/internal/domain/entities"
	"github.com/rios0rios0/depman/internal/domain/repositories"
)

// StubWorkingCopyRepository implements repositories.WorkingCopyRepository with canned
// statuses keyed by dependency name. Unknown names are reported as absent.
type StubWorkingCopyRepository struct {
	Statuses   map[string]entities.WorkingCopyStatus
	InspectErr map[string]error

	// spy: paths inspected
	InspectedPaths []string
}

var _ repositories.WorkingCopyRepository = (*StubWorkingCopyRepository)(nil)

func (s *StubWorkingCopyRepository) Inspect(
	path string,
	dep entities.Dependency,
) (entities.WorkingCopyStatus, error) {
	s.InspectedPaths = append(s.InspectedPaths, path)
	if err := s.InspectErr[dep.Name]; err != nil {
		return entities.WorkingCopyStatus{}, err
	}
	if status, ok := s.Statuses[dep.Name]; ok {
		return status, nil
	}
	return entities.WorkingCopyStatus{Name: dep.Name, Path: path, State: entities.StateAbsent}, nil
}
