// pkg/lmsapi/form.go
package lmsapi

import "sync"

// FormTracker computes a dirty flag for an edit/create form by field-wise
// comparison against a baseline snapshot. A form with pending file
// attachments is dirty regardless of its fields.
type FormTracker struct {
	mu          sync.Mutex
	baseline    map[string]string
	current     map[string]string
	attachments []string
}

// NewFormTracker snapshots the baseline: the loaded entity for an edit
// form, or all-empty for a create form.
func NewFormTracker(baseline map[string]string) *FormTracker {
	ft := &FormTracker{
		baseline: make(map[string]string, len(baseline)),
		current:  make(map[string]string, len(baseline)),
	}
	for k, v := range baseline {
		ft.baseline[k] = v
		ft.current[k] = v
	}
	return ft
}

// Set updates one field. Reverting a field to its baseline value can
// turn the form clean again.
func (ft *FormTracker) Set(field, value string) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.current[field] = value
}

// Value returns the current value of a field.
func (ft *FormTracker) Value(field string) string {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return ft.current[field]
}

// AddAttachment records a pending file attachment.
func (ft *FormTracker) AddAttachment(name string) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.attachments = append(ft.attachments, name)
}

// RemoveAttachment drops a pending attachment by name.
func (ft *FormTracker) RemoveAttachment(name string) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	kept := ft.attachments[:0]
	for _, a := range ft.attachments {
		if a != name {
			kept = append(kept, a)
		}
	}
	ft.attachments = kept
}

// Dirty reports whether the form has diverged from its baseline or has
// pending attachments.
func (ft *FormTracker) Dirty() bool {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	if len(ft.attachments) > 0 {
		return true
	}
	if len(ft.current) != len(ft.baseline) {
		return true
	}
	for k, v := range ft.current {
		if base, ok := ft.baseline[k]; !ok || base != v {
			return true
		}
	}
	return false
}

// Reset discards edits, restoring every field to the baseline.
func (ft *FormTracker) Reset() {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.current = make(map[string]string, len(ft.baseline))
	for k, v := range ft.baseline {
		ft.current[k] = v
	}
	ft.attachments = nil
}

// Rebase makes the current state the new baseline, e.g. after a
// successful save.
func (ft *FormTracker) Rebase() {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.baseline = make(map[string]string, len(ft.current))
	for k, v := range ft.current {
		ft.baseline[k] = v
	}
	ft.attachments = nil
}
