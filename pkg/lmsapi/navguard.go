// pkg/lmsapi/navguard.go
package lmsapi

import (
	"net/url"
	"strings"
	"sync"
)

// Decision is the outcome of a navigation interception check.
type Decision int

const (
	// Allow lets the navigation proceed.
	Allow Decision = iota
	// Block stops the navigation and shows the blocking notification.
	Block
	// Prompt defers to the native unload confirmation.
	Prompt
	// Ignore drops the navigation silently, with no notification.
	Ignore
)

// ClickEvent describes an in-page link activation for DecideClick.
type ClickEvent struct {
	Href     string // link target, absolute or relative
	Target   string // anchor target attribute ("" or "_self" means same tab)
	Modified bool   // ctrl/cmd/shift/alt held
	Download bool   // download attribute present
}

// NavigationGuard blocks navigation away from a dirty form. It is an
// explicit value object rather than a bare flag: the page arms it with
// a dirty predicate, flips Saving around submits, and calls Release
// when an explicit save or cancel makes leaving safe. Every decision
// reads the released flag at event time, because a submit can release
// the guard while interception handlers are still installed.
//
// The guard is advisory. It cannot stop a forced tab close or any
// navigation path it is not consulted about.
type NavigationGuard struct {
	mu       sync.Mutex
	dirty    func() bool
	saving   bool
	released bool
	origin   string
}

// NewNavigationGuard arms a guard over a dirty predicate, usually a
// FormTracker's Dirty method. Origin is the page origin used to let
// cross-origin links pass through (e.g. "https://lms.example.edu").
func NewNavigationGuard(origin string, dirty func() bool) *NavigationGuard {
	return &NavigationGuard{dirty: dirty, origin: strings.TrimRight(origin, "/")}
}

// SetSaving marks a submit in flight. Navigation while saving is
// neither allowed nor prompted; it is ignored.
func (g *NavigationGuard) SetSaving(saving bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saving = saving
}

// Release disables all further interception. Called by explicit submit
// success or explicit cancel.
func (g *NavigationGuard) Release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.released = true
}

// Arm re-enables interception, e.g. when the same page instance starts
// a fresh edit.
func (g *NavigationGuard) Arm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.released = false
}

// Released reports whether the guard has been released.
func (g *NavigationGuard) Released() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.released
}

// active reports whether interception applies right now.
func (g *NavigationGuard) active() bool {
	g.mu.Lock()
	saving, released := g.saving, g.released
	g.mu.Unlock()
	return !released && !saving && g.dirty()
}

// DecideUnload handles the native unload signal: Prompt while the form
// is dirty, Allow otherwise.
func (g *NavigationGuard) DecideUnload() Decision {
	if g.active() {
		return Prompt
	}
	return Allow
}

// DecidePop handles a history pop (browser back): Block while dirty,
// which the page implements by re-pushing its own entry and showing the
// blocking notification.
func (g *NavigationGuard) DecidePop() Decision {
	if g.active() {
		return Block
	}
	return Allow
}

// DecideClick handles an in-page link click. Clicks that open elsewhere
// anyway pass through: modified clicks, non-self targets, downloads,
// mailto:/tel: links, and cross-origin hrefs.
func (g *NavigationGuard) DecideClick(ev ClickEvent) Decision {
	if ev.Modified || ev.Download {
		return Allow
	}
	if ev.Target != "" && ev.Target != "_self" {
		return Allow
	}
	href := strings.ToLower(ev.Href)
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
		return Allow
	}
	if u, err := url.Parse(ev.Href); err == nil && u.IsAbs() {
		origin, originErr := url.Parse(g.origin)
		if originErr != nil || !strings.EqualFold(u.Scheme, origin.Scheme) || !strings.EqualFold(u.Host, origin.Host) {
			return Allow
		}
	}
	if g.active() {
		return Block
	}
	return Allow
}

// Navigate is the programmatic navigation helper: released forms go
// unconditionally, saving forms drop the request without notifying,
// dirty forms block with the notification, clean forms go. The Ignore
// versus Block distinction is what tells the caller whether to surface
// anything to the user.
func (g *NavigationGuard) Navigate(path string, follow func(string)) Decision {
	g.mu.Lock()
	saving, released := g.saving, g.released
	g.mu.Unlock()

	if released {
		follow(path)
		return Allow
	}
	if saving {
		return Ignore
	}
	if g.dirty() {
		return Block
	}
	follow(path)
	return Allow
}
