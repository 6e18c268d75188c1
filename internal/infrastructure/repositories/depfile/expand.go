package depfile

import (
	"os"
	"regexp"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`) //nolint:gochecknoglobals // compiled once

// expander resolves ${VAR} references from the process environment first and the depfile's
// .env second.
type expander struct {
	dotenv map[string]string
}

func (e expander) lookup(name string) (string, bool) {
	if value, ok := os.LookupEnv(name); ok {
		return value, true
	}
	value, ok := e.dotenv[name]
	return value, ok
}

func (e expander) expand(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if value, ok := e.lookup(varName); ok {
			return value
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// expandDepfile returns a copy of the depfile with every path-like value expanded. Build
// commands are left untouched: the shell expands them when they run.
func (e expander) expandDepfile(in *entities.Depfile) *entities.Depfile {
	out := &entities.Depfile{
		Config: entities.DepfileConfig{
			DependenciesDir: e.expand(in.Config.DependenciesDir),
		},
		Dependencies: make([]entities.RawDependency, len(in.Dependencies)),
	}

	for i, dep := range in.Dependencies {
		out.Dependencies[i] = entities.RawDependency{
			Name:     e.expand(dep.Name),
			Location: e.expand(dep.Location),
			Version:  e.expand(dep.Version),
			Build:    dep.Build,
		}
	}
	return out
}
