package repositories

import (
	"github.com/rios0rios0/depman/internal/domain/entities"
)

// WorkingCopyRepository inspects working copies without invoking any subprocess.
type WorkingCopyRepository interface {
	Inspect(path string, dep entities.Dependency) (entities.WorkingCopyStatus, error)
}
