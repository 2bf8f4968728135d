package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultsFS embed.FS

// manifestFile sits at the store root and carries template descriptions.
// It is metadata, not a template, and is excluded from List.
const manifestFile = "manifest.yaml"

// Store is a directory of text templates, addressed by slash-separated
// relative IDs such as "python/class.py".
type Store struct {
	root string
}

// Open opens the template store rooted at dir, creating it if needed and
// seeding the built-in default templates. A default is only written when the
// file does not already exist, so user edits survive.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create templates directory %s: %w", dir, err)
	}

	s := &Store{root: dir}
	if err := s.seedDefaults(); err != nil {
		return nil, err
	}
	return s, nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) seedDefaults() error {
	return fs.WalkDir(defaultsFS, "defaults", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(path, "defaults")
		rel = strings.TrimPrefix(rel, "/")
		dest := filepath.Join(s.root, filepath.FromSlash(rel))

		if d.IsDir() {
			if rel == "" {
				return nil
			}
			if err := os.MkdirAll(dest, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dest, err)
			}
			return nil
		}

		if _, err := os.Stat(dest); err == nil {
			return nil
		}

		content, err := defaultsFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read built-in template %s: %w", rel, err)
		}
		if err := os.WriteFile(dest, content, 0644); err != nil {
			return fmt.Errorf("failed to seed template %s: %w", dest, err)
		}
		return nil
	})
}

// resolve maps a template ID to an absolute path inside the store. IDs
// without an extension get ".py" appended. IDs that would escape the store
// root are rejected.
func (s *Store) resolve(id string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(id))

	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid template id: %s resolves outside the template store", id)
	}

	if filepath.Ext(cleaned) == "" {
		cleaned += ".py"
	}

	return filepath.Join(s.root, cleaned), nil
}

// Load reads a template by ID and returns its content.
func (s *Store) Load(id string) (string, error) {
	path, err := s.resolve(id)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateNotFoundError{ID: id, Path: path}
		}
		return "", fmt.Errorf("failed to read template %s: %w", id, err)
	}

	return string(content), nil
}

// Exists reports whether a template ID resolves to a stored file.
func (s *Store) Exists(id string) bool {
	path, err := s.resolve(id)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// List walks the store and returns the IDs of all stored templates in
// directory-traversal order. The manifest is not a template and is skipped.
func (s *Store) List() ([]string, error) {
	var ids []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == manifestFile {
			return nil
		}

		ids = append(ids, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	return ids, nil
}

// manifest mirrors the manifest.yaml structure.
type manifest struct {
	Templates map[string]string `yaml:"templates"`
}

// Descriptions returns the template descriptions from the store manifest.
// A missing or empty manifest yields an empty map, not an error.
func (s *Store) Descriptions() (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(s.root, manifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read template manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse template manifest: %w", err)
	}
	if m.Templates == nil {
		m.Templates = map[string]string{}
	}

	return m.Templates, nil
}
