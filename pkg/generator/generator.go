// Package generator encodes pygen's scaffold recipes: each scaffold pairs a
// template ID with a variable-mapping rule and a destination layout.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pygen-dev/pygen/pkg/templates"
)

const (
	packageTemplate = "python/package.py"
	classTemplate   = "python/class.py"
	testTemplate    = "python/test.py"

	// defaultConstructorBody keeps an empty __init__ syntactically valid.
	defaultConstructorBody = "        pass"
)

// Generator assembles variable mappings for the canonical scaffolds and
// drives the template engine. Values are substituted verbatim; the generator
// does not validate names, authors, or injected constructor code.
type Generator struct {
	store  *templates.Store
	engine *templates.Engine
}

// New creates a generator backed by the given template store.
func New(store *templates.Store) *Generator {
	return &Generator{
		store:  store,
		engine: templates.NewEngine(store),
	}
}

// ClassOptions configures CreateClass. Module defaults to the snake_cased
// class name; ConstructorBody defaults to a bare "pass".
type ClassOptions struct {
	Name              string
	Module            string
	OutputDir         string
	ConstructorParams string
	ConstructorBody   string
}

// CreatePackage creates directory name/ under outputDir with an __init__.py
// and a main.py, both rendered from the package template. Returns the paths
// written, in write order.
func (g *Generator) CreatePackage(name, author, outputDir string) ([]string, error) {
	pkgDir := filepath.Join(outputDir, name)
	if err := os.MkdirAll(pkgDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create package directory %s: %w", pkgDir, err)
	}

	vars := map[string]string{
		"package_name": name,
		"author":       author,
	}

	written := make([]string, 0, 2)
	for _, filename := range []string{"__init__.py", "main.py"} {
		dest := filepath.Join(pkgDir, filename)
		if err := g.engine.Create(packageTemplate, dest, vars); err != nil {
			return written, err
		}
		written = append(written, dest)
	}

	return written, nil
}

// CreateClass renders the class template into <module>.py under the output
// directory and returns the written path. Constructor params and body are
// passed through verbatim; supplying syntactically valid Python is the
// caller's job.
func (g *Generator) CreateClass(opts ClassOptions) (string, error) {
	module := opts.Module
	if module == "" {
		module = SnakeCase(opts.Name)
	}

	body := opts.ConstructorBody
	if body == "" {
		body = defaultConstructorBody
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	dest := filepath.Join(outputDir, module+".py")
	vars := map[string]string{
		"class_name":         opts.Name,
		"module_name":        module,
		"constructor_params": opts.ConstructorParams,
		"constructor_body":   body,
	}

	if err := g.engine.Create(classTemplate, dest, vars); err != nil {
		return "", err
	}

	return dest, nil
}

// CreateTest renders the test template into test_<module>.py under outputDir
// and returns the written path. The module defaults to the snake_cased class
// name, matching CreateClass.
func (g *Generator) CreateTest(className, module, outputDir string) (string, error) {
	if module == "" {
		module = SnakeCase(className)
	}
	if outputDir == "" {
		outputDir = "."
	}

	dest := filepath.Join(outputDir, "test_"+module+".py")
	vars := map[string]string{
		"class_name":  className,
		"module_name": module,
	}

	if err := g.engine.Create(testTemplate, dest, vars); err != nil {
		return "", err
	}

	return dest, nil
}

// ListTemplates returns the IDs of every stored template.
func (g *Generator) ListTemplates() ([]string, error) {
	return g.store.List()
}

// SnakeCase derives a module name from a class name: an underscore before
// every interior uppercase letter, then everything lowercased. "MyClass"
// becomes "my_class"; acronym runs split per letter ("HTTPServer" ->
// "h_t_t_p_server").
func SnakeCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)

	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
