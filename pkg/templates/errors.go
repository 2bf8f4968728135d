package templates

import "fmt"

// TemplateNotFoundError is returned when a template ID does not resolve to a
// file in the store.
type TemplateNotFoundError struct {
	ID   string
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template %s not found (looked for %s)", e.ID, e.Path)
}

// MissingVariableError is returned when a template references a placeholder
// with no entry in the variable mapping.
type MissingVariableError struct {
	Placeholder string
	TemplateID  string
}

func (e *MissingVariableError) Error() string {
	if e.TemplateID != "" {
		return fmt.Sprintf("template %s: no value for placeholder $%s", e.TemplateID, e.Placeholder)
	}
	return fmt.Sprintf("no value for placeholder $%s", e.Placeholder)
}
