package lmsapi

import "testing"

func TestFormTrackerDirty(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": "", "content": ""})

	if ft.Dirty() {
		t.Error("fresh tracker must be clean")
	}

	ft.Set("title", "x")
	if !ft.Dirty() {
		t.Error("changed field must make the form dirty")
	}

	// Reverting to the baseline value makes it clean again.
	ft.Set("title", "")
	if ft.Dirty() {
		t.Error("reverted field must make the form clean")
	}
}

func TestFormTrackerAttachments(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": "a"})

	ft.AddAttachment("syllabus.pdf")
	if !ft.Dirty() {
		t.Error("pending attachment must make the form dirty")
	}
	ft.RemoveAttachment("syllabus.pdf")
	if ft.Dirty() {
		t.Error("removing the attachment must make the form clean")
	}
}

func TestFormTrackerResetAndRebase(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": "a"})
	ft.Set("title", "b")
	ft.Reset()
	if ft.Value("title") != "a" || ft.Dirty() {
		t.Errorf("Reset: value=%q dirty=%v", ft.Value("title"), ft.Dirty())
	}

	ft.Set("title", "c")
	ft.Rebase()
	if ft.Dirty() {
		t.Error("Rebase must make the current state the clean baseline")
	}
	if ft.Value("title") != "c" {
		t.Errorf("value = %q, want c", ft.Value("title"))
	}
}

func TestGuardDecisionsWhileDirty(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": ""})
	g := NewNavigationGuard("https://lms.example.edu", ft.Dirty)

	ft.Set("title", "draft")

	if got := g.DecideUnload(); got != Prompt {
		t.Errorf("DecideUnload = %v, want Prompt", got)
	}
	if got := g.DecidePop(); got != Block {
		t.Errorf("DecidePop = %v, want Block", got)
	}
	if got := g.DecideClick(ClickEvent{Href: "/accounts"}); got != Block {
		t.Errorf("DecideClick = %v, want Block", got)
	}
}

func TestGuardDecisionsWhileClean(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": ""})
	g := NewNavigationGuard("https://lms.example.edu", ft.Dirty)

	if got := g.DecideUnload(); got != Allow {
		t.Errorf("DecideUnload = %v, want Allow", got)
	}
	if got := g.DecidePop(); got != Allow {
		t.Errorf("DecidePop = %v, want Allow", got)
	}
	if got := g.DecideClick(ClickEvent{Href: "/accounts"}); got != Allow {
		t.Errorf("DecideClick = %v, want Allow", got)
	}
}

func TestGuardClickPassThroughs(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": ""})
	g := NewNavigationGuard("https://lms.example.edu", ft.Dirty)
	ft.Set("title", "draft") // dirty: only pass-through cases may Allow

	tests := []struct {
		name string
		ev   ClickEvent
	}{
		{"modified click", ClickEvent{Href: "/x", Modified: true}},
		{"new tab target", ClickEvent{Href: "/x", Target: "_blank"}},
		{"download link", ClickEvent{Href: "/x", Download: true}},
		{"mailto", ClickEvent{Href: "mailto:admin@example.edu"}},
		{"tel", ClickEvent{Href: "tel:+15551234"}},
		{"cross-origin", ClickEvent{Href: "https://other.example.com/page"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.DecideClick(tc.ev); got != Allow {
				t.Errorf("DecideClick(%+v) = %v, want Allow", tc.ev, got)
			}
		})
	}

	// Same-origin absolute links are still guarded.
	if got := g.DecideClick(ClickEvent{Href: "https://lms.example.edu/accounts"}); got != Block {
		t.Errorf("same-origin absolute link = %v, want Block", got)
	}
	// A _self target is same-tab and guarded.
	if got := g.DecideClick(ClickEvent{Href: "/x", Target: "_self"}); got != Block {
		t.Errorf("_self target = %v, want Block", got)
	}
}

func TestGuardReleaseBypassesAllChecks(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": ""})
	g := NewNavigationGuard("https://lms.example.edu", ft.Dirty)

	ft.Set("title", "draft")
	g.Release()

	// Still dirty, but released: nothing intercepts.
	if got := g.DecideClick(ClickEvent{Href: "/accounts"}); got != Allow {
		t.Errorf("released DecideClick = %v, want Allow", got)
	}
	if got := g.DecideUnload(); got != Allow {
		t.Errorf("released DecideUnload = %v, want Allow", got)
	}
	if got := g.DecidePop(); got != Allow {
		t.Errorf("released DecidePop = %v, want Allow", got)
	}

	g.Arm()
	if got := g.DecidePop(); got != Block {
		t.Errorf("re-armed DecidePop = %v, want Block", got)
	}
}

func TestGuardSavingSuppresses(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": ""})
	g := NewNavigationGuard("https://lms.example.edu", ft.Dirty)

	ft.Set("title", "draft")
	g.SetSaving(true)

	// While saving, interception surfaces stand down (the submit
	// controls are already disabled) and Navigate drops the request
	// silently: Ignore, not Block, so no notification is shown.
	if got := g.DecideUnload(); got != Allow {
		t.Errorf("saving DecideUnload = %v, want Allow", got)
	}

	var followed string
	if got := g.Navigate("/done", func(p string) { followed = p }); got != Ignore {
		t.Errorf("Navigate while saving = %v, want Ignore", got)
	}
	if followed != "" {
		t.Errorf("Navigate while saving must not follow, went to %q", followed)
	}

	// Once the save finishes without releasing, a dirty form is back to
	// blocking with the notification.
	g.SetSaving(false)
	if got := g.Navigate("/done", func(p string) { followed = p }); got != Block {
		t.Errorf("Navigate after saving = %v, want Block", got)
	}
	if followed != "" {
		t.Errorf("Navigate after saving must not follow, went to %q", followed)
	}
}

func TestGuardNavigate(t *testing.T) {
	ft := NewFormTracker(map[string]string{"title": ""})
	g := NewNavigationGuard("https://lms.example.edu", ft.Dirty)

	var followed string
	follow := func(p string) { followed = p }

	// Clean: navigates.
	if got := g.Navigate("/list", follow); got != Allow || followed != "/list" {
		t.Fatalf("clean Navigate = %v followed=%q", got, followed)
	}

	// Dirty: blocked.
	ft.Set("title", "draft")
	followed = ""
	if got := g.Navigate("/list", follow); got != Block || followed != "" {
		t.Fatalf("dirty Navigate = %v followed=%q", got, followed)
	}

	// Released: navigates even though dirty.
	g.Release()
	if got := g.Navigate("/list", follow); got != Allow || followed != "/list" {
		t.Fatalf("released Navigate = %v followed=%q", got, followed)
	}
}
