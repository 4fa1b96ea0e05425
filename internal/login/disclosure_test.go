package login

import (
	"fmt"
	"testing"
)

// recordingView records every call made by the disclosure controller.
type recordingView struct {
	calls []string
}

func (v *recordingView) ShowProviderButton(id string) {
	v.calls = append(v.calls, "show-button:"+id)
}

func (v *recordingView) ShowSecondaryProviders() {
	v.calls = append(v.calls, "show-secondary")
}

func (v *recordingView) HideShowMoreControl() {
	v.calls = append(v.calls, "hide-show-more")
}

func (v *recordingView) ExpandPasswordPanel() {
	v.calls = append(v.calls, "expand-password")
}

func (v *recordingView) ShowProviderForm(id string) {
	v.calls = append(v.calls, "show-form:"+id)
}

func (v *recordingView) HideProviderForm(id string) {
	v.calls = append(v.calls, "hide-form:"+id)
}

func (v *recordingView) FocusProviderForm(id string) {
	v.calls = append(v.calls, "focus-form:"+id)
}

func (v *recordingView) count(call string) int {
	total := 0
	for _, c := range v.calls {
		if c == call {
			total++
		}
	}
	return total
}

var _ View = &recordingView{}

func TestInitializeShowsLastUsedSecondary(t *testing.T) {
	view := &recordingView{}

	Initialize(view, Data{Providers: testProviders, LastUsed: "twitter"})

	if view.count("show-button:twitter") != 1 {
		t.Errorf("Expected the last-used secondary button to be shown, got calls %v", view.calls)
	}

	if view.count("show-button:openid") != 0 {
		t.Errorf("Expected 'openid' to stay hidden, got calls %v", view.calls)
	}

	if view.count("hide-show-more") != 0 {
		t.Errorf("Expected the show-more control to stay visible, got calls %v", view.calls)
	}
}

func TestInitializeLastUsedPassword(t *testing.T) {
	view := &recordingView{}

	c := Initialize(view, Data{Providers: testProviders, LastUsed: MethodPassword})

	if view.count("expand-password") != 1 {
		t.Errorf("Expected the password panel to be expanded, got calls %v", view.calls)
	}

	// A later activation of the password button must not expand it twice.
	c.ActivateProvider(MethodPassword)

	if view.count("expand-password") != 1 {
		t.Errorf("Expected a single panel expansion, got calls %v", view.calls)
	}
}

func TestInitializeFormError(t *testing.T) {
	view := &recordingView{}

	Initialize(view, Data{
		Providers:  testProviders,
		FormErrors: map[string]string{"openid": "invalid identifier"},
	})

	if view.count("show-form:openid") != 1 || view.count("focus-form:openid") != 1 {
		t.Errorf("Expected the erroneous form to start revealed and focused, got calls %v", view.calls)
	}
}

func TestActivateShowMoreIsOneWay(t *testing.T) {
	view := &recordingView{}

	c := Initialize(view, Data{Providers: testProviders})

	c.ActivateShowMore()
	c.ActivateShowMore()

	if view.count("show-secondary") != 1 {
		t.Errorf("Expected secondary providers to be revealed exactly once, got calls %v", view.calls)
	}

	if view.count("hide-show-more") != 1 {
		t.Errorf("Expected the show-more control to be hidden exactly once, got calls %v", view.calls)
	}

	state := c.State()
	for _, p := range testProviders {
		if !state.Providers[p.ID] {
			t.Errorf("Expected provider '%s' to be visible after show-more", p.ID)
		}
	}
	if state.ShowMore {
		t.Error("Expected the show-more control to stay hidden for the rest of the page load")
	}
}

func TestActivateProviderTogglesInlineForm(t *testing.T) {
	view := &recordingView{}

	c := Initialize(view, Data{Providers: testProviders})
	c.ActivateShowMore()

	c.ActivateProvider("openid")

	if view.count("show-form:openid") != 1 {
		t.Errorf("Expected the inline form to be revealed, got calls %v", view.calls)
	}
	if view.count("focus-form:openid") != 1 {
		t.Errorf("Expected focus to return to the form input, got calls %v", view.calls)
	}

	c.ActivateProvider("openid")

	if view.count("hide-form:openid") != 1 {
		t.Errorf("Expected a second activation to hide the form again, got calls %v", view.calls)
	}

	c.ActivateProvider("openid")

	if view.count("show-form:openid") != 2 {
		t.Errorf("Expected the toggle to be a two-state cycle, got calls %v", view.calls)
	}
}

func TestActivateProviderIgnoresHiddenForm(t *testing.T) {
	view := &recordingView{}

	// openid is secondary and hidden: its form cannot be revealed while the
	// button itself is not visible.
	c := Initialize(view, Data{Providers: testProviders})

	c.ActivateProvider("openid")

	if view.count("show-form:openid") != 0 {
		t.Errorf("Expected no form reveal for a hidden button, got calls %v", view.calls)
	}
}

func TestActivateProviderIgnoresRedirectProviders(t *testing.T) {
	view := &recordingView{}

	c := Initialize(view, Data{Providers: testProviders})

	before := len(view.calls)
	c.ActivateProvider("github")

	if len(view.calls) != before {
		t.Errorf("Expected no transition for a redirect-only provider, got calls %v", view.calls)
	}
}

func TestStateMatchesWorkedExample(t *testing.T) {
	view := &recordingView{}

	c := Initialize(view, Data{Providers: testProviders, LastUsed: "twitter"})

	state := c.State()

	for _, tc := range []struct {
		id      string
		visible bool
	}{
		{"github", true},
		{"google", true},
		{"twitter", true},
		{"openid", false},
	} {
		if state.Providers[tc.id] != tc.visible {
			t.Errorf("Expected visibility of '%s' to be %v", tc.id, tc.visible)
		}
	}

	if !state.ShowMore {
		t.Error("Expected the show-more control to be visible, a provider is still hidden")
	}
}

func ExampleComputeInitialVisibility() {
	providers := List{
		{ID: "github", Title: "GitHub"},
		{ID: "google", Title: "Google"},
		{ID: "openid", Title: "OpenID", InPage: true},
		{ID: "twitter", Title: "Twitter"},
	}

	state := ComputeInitialVisibility(providers, "twitter", nil)

	for _, p := range providers {
		fmt.Printf("%s: %v\n", p.ID, state.Providers[p.ID])
	}
	// Output:
	// github: true
	// google: true
	// openid: false
	// twitter: true
}
