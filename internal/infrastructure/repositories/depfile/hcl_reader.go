package depfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/rios0rios0/depman/internal/domain/entities"
)

//nolint:gochecknoglobals // static schemas
var (
	depfileSchema = &hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "config"},
			{Type: "dependency"},
		},
	}
	configSchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "dependencies_dir"},
		},
	}
	dependencySchema = &hcl.BodySchema{
		Attributes: []hcl.AttributeSchema{
			{Name: "name"},
			{Name: "location", Required: true},
			{Name: "version"},
			{Name: "build"},
		},
	}
)

// HCLReader decodes depfiles written in HCL:
//
//	config {
//	  dependencies_dir = "vendor"
//	}
//
//	dependency {
//	  location = "https://example.com/foo.git"
//	  version  = "v1.2.0"
//	  build    = ["make"]
//	}
//
// Environment variables are available to expressions as env.NAME.
type HCLReader struct {
	environ func() []string
}

func NewHCLReader() *HCLReader { return &HCLReader{environ: os.Environ} }

func (it *HCLReader) Name() string { return "hcl" }

func (it *HCLReader) Extensions() []string { return []string{".hcl"} }

func (it *HCLReader) Read(data []byte, filename string) (*entities.Depfile, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse depfile %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(depfileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid depfile %s: %w", filename, diags)
	}

	evalCtx := it.evalContext()
	depfile := &entities.Depfile{}

	for _, block := range content.Blocks {
		switch block.Type {
		case "config":
			attrs, attrDiags := block.Body.Content(configSchema)
			if attrDiags.HasErrors() {
				return nil, fmt.Errorf("invalid config block in %s: %w", filename, attrDiags)
			}
			dir, err := stringAttribute(attrs.Attributes, "dependencies_dir", evalCtx)
			if err != nil {
				return nil, err
			}
			depfile.Config.DependenciesDir = dir

		case "dependency":
			dep, err := decodeDependency(block, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("invalid dependency block in %s: %w", filename, err)
			}
			depfile.Dependencies = append(depfile.Dependencies, dep)
		}
	}

	return depfile, nil
}

func (it *HCLReader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range it.environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			vars[name] = cty.StringVal(value)
		}
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func decodeDependency(block *hcl.Block, evalCtx *hcl.EvalContext) (entities.RawDependency, error) {
	attrs, diags := block.Body.Content(dependencySchema)
	if diags.HasErrors() {
		return entities.RawDependency{}, diags
	}

	var (
		dep entities.RawDependency
		err error
	)
	if dep.Name, err = stringAttribute(attrs.Attributes, "name", evalCtx); err != nil {
		return dep, err
	}
	if dep.Location, err = stringAttribute(attrs.Attributes, "location", evalCtx); err != nil {
		return dep, err
	}
	if dep.Version, err = stringAttribute(attrs.Attributes, "version", evalCtx); err != nil {
		return dep, err
	}
	if dep.Build, err = stringListAttribute(attrs.Attributes, "build", evalCtx); err != nil {
		return dep, err
	}
	return dep, nil
}

func stringAttribute(attrs hcl.Attributes, name string, evalCtx *hcl.EvalContext) (string, error) {
	attr, ok := attrs[name]
	if !ok {
		return "", nil
	}

	value, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if value.IsNull() {
		return "", nil
	}
	if value.Type() != cty.String || !value.IsKnown() {
		return "", fmt.Errorf("%s: %q must be a string", attr.Range, name)
	}
	return value.AsString(), nil
}

func stringListAttribute(attrs hcl.Attributes, name string, evalCtx *hcl.EvalContext) ([]string, error) {
	attr, ok := attrs[name]
	if !ok {
		return nil, nil
	}

	value, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if value.IsNull() {
		return nil, nil
	}

	valueType := value.Type()
	if !valueType.IsListType() && !valueType.IsTupleType() {
		return nil, fmt.Errorf("%s: %q must be a list of strings", attr.Range, name)
	}

	result := make([]string, 0, value.LengthInt())
	for iter := value.ElementIterator(); iter.Next(); {
		_, element := iter.Element()
		if element.Type() != cty.String || element.IsNull() {
			return nil, fmt.Errorf("%s: %q must be a list of strings", attr.Range, name)
		}
		result = append(result, element.AsString())
	}
	return result, nil
}
