// Package templates implements the template store and substitution engine
// behind pygen's scaffolds.
//
// Templates are plain text files holding placeholders of the form $name or
// ${name}. Substitution is a single textual pass: each placeholder is
// replaced with its mapped value, and values are never re-scanned for
// further placeholders. "$$" produces a literal "$".
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Engine loads templates from a Store and substitutes variable mappings
// into them.
type Engine struct {
	store *Store
}

// NewEngine creates an engine backed by the given store.
func NewEngine(store *Store) *Engine {
	return &Engine{store: store}
}

// Generate loads the template identified by id and substitutes vars into it.
// A "date" variable (YYYY-MM-DD, today) is injected when the caller does not
// supply one. Returns *TemplateNotFoundError when id does not resolve and
// *MissingVariableError when the template references a placeholder absent
// from vars.
func (e *Engine) Generate(id string, vars map[string]string) (string, error) {
	content, err := e.store.Load(id)
	if err != nil {
		return "", err
	}

	merged := make(map[string]string, len(vars)+1)
	for k, v := range vars {
		merged[k] = v
	}
	if _, ok := merged["date"]; !ok {
		merged["date"] = time.Now().Format("2006-01-02")
	}

	out, err := substitute(content, merged)
	if err != nil {
		if missing, ok := err.(*MissingVariableError); ok {
			missing.TemplateID = id
		}
		return "", err
	}

	return out, nil
}

// Create substitutes vars into the template and writes the result to
// destPath, creating parent directories as needed. Existing files are
// overwritten without warning.
func (e *Engine) Create(id, destPath string, vars map[string]string) error {
	out, err := e.Generate(id, vars)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(destPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	return nil
}

// substitute performs one pass of placeholder replacement over content.
// A "$" that introduces neither an identifier, a braced identifier, nor a
// second "$" is kept literal.
func substitute(content string, vars map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(content))

	for i := 0; i < len(content); {
		c := content[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}

		// "$$" escapes a literal dollar sign.
		if i+1 < len(content) && content[i+1] == '$' {
			b.WriteByte('$')
			i += 2
			continue
		}

		// "${name}"
		if i+1 < len(content) && content[i+1] == '{' {
			end := strings.IndexByte(content[i+2:], '}')
			if end >= 0 {
				name := content[i+2 : i+2+end]
				if isIdentifier(name) {
					value, ok := vars[name]
					if !ok {
						return "", &MissingVariableError{Placeholder: name}
					}
					b.WriteString(value)
					i += 2 + end + 1
					continue
				}
			}
			b.WriteByte('$')
			i++
			continue
		}

		// "$name"
		j := i + 1
		for j < len(content) && isIdentChar(content[j], j > i+1) {
			j++
		}
		if j == i+1 {
			b.WriteByte('$')
			i++
			continue
		}

		name := content[i+1 : j]
		value, ok := vars[name]
		if !ok {
			return "", &MissingVariableError{Placeholder: name}
		}
		b.WriteString(value)
		i = j
	}

	return b.String(), nil
}

func isIdentChar(c byte, allowDigit bool) bool {
	switch {
	case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case allowDigit && '0' <= c && c <= '9':
		return true
	}
	return false
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentChar(s[i], i > 0) {
			return false
		}
	}
	return true
}
