package login

import "testing"

var testProviders = List{
	{ID: "github", Title: "GitHub"},
	{ID: "google", Title: "Google"},
	{ID: "openid", Title: "OpenID", InPage: true},
	{ID: "twitter", Title: "Twitter"},
}

func TestComputeInitialVisibilityFirstVisit(t *testing.T) {
	state := ComputeInitialVisibility(testProviders, "", nil)

	for _, id := range []string{"github", "google"} {
		if !state.Providers[id] {
			t.Errorf("Expected primary provider '%s' to be visible", id)
		}
	}

	for _, id := range []string{"openid", "twitter"} {
		if state.Providers[id] {
			t.Errorf("Expected secondary provider '%s' to be hidden", id)
		}
	}

	if !state.ShowMore {
		t.Error("Expected the show-more control to be visible while providers are hidden")
	}

	if state.PasswordExpanded {
		t.Error("Expected the password panel to start collapsed")
	}

	if len(state.Forms) != 0 {
		t.Errorf("Expected no inline form to start revealed, got %d", len(state.Forms))
	}
}

func TestComputeInitialVisibilityLastUsedSecondary(t *testing.T) {
	state := ComputeInitialVisibility(testProviders, "twitter", nil)

	visible := make([]string, 0)
	for _, p := range testProviders {
		if state.Providers[p.ID] {
			visible = append(visible, p.ID)
		}
	}

	expected := map[string]bool{"github": true, "google": true, "twitter": true}
	if len(visible) != len(expected) {
		t.Errorf("Expected %d visible providers, got %v", len(expected), visible)
	}
	for _, id := range visible {
		if !expected[id] {
			t.Errorf("Expected provider '%s' to be hidden", id)
		}
	}

	if state.Providers["openid"] {
		t.Error("Expected provider 'openid' to be hidden")
	}

	if !state.ShowMore {
		t.Error("Expected the show-more control to be visible, 'openid' is still hidden")
	}
}

func TestComputeInitialVisibilityLastUsedPassword(t *testing.T) {
	state := ComputeInitialVisibility(testProviders, MethodPassword, nil)

	if !state.PasswordExpanded {
		t.Error("Expected the password panel to start expanded")
	}

	if !state.ShowMore {
		t.Error("Expected the show-more control visibility to be independent of the password method")
	}
}

func TestComputeInitialVisibilityPasswordError(t *testing.T) {
	state := ComputeInitialVisibility(testProviders, "github", map[string]string{
		MethodPassword: "incorrect password",
	})

	if !state.PasswordExpanded {
		t.Error("Expected the password panel to start expanded when a password error is present")
	}
}

func TestComputeInitialVisibilityInlineFormError(t *testing.T) {
	state := ComputeInitialVisibility(testProviders, "", map[string]string{
		"openid": "invalid identifier",
	})

	if !state.Providers["openid"] {
		t.Error("Expected the provider button to be visible while its form carries an error")
	}

	if !state.Forms["openid"] {
		t.Error("Expected the inline form to start revealed when it carries an error")
	}

	if state.FocusedForm != "openid" {
		t.Errorf("Expected the inline form to be focused, got '%s'", state.FocusedForm)
	}
}

func TestComputeInitialVisibilityAllSecondaryVisible(t *testing.T) {
	providers := List{
		{ID: "github", Title: "GitHub"},
		{ID: "google", Title: "Google"},
		{ID: "twitter", Title: "Twitter"},
	}

	state := ComputeInitialVisibility(providers, "twitter", nil)

	if state.ShowMore {
		t.Error("Expected the show-more control to be hidden when no provider remains hidden")
	}
}

func TestComputeInitialVisibilityFewProviders(t *testing.T) {
	providers := List{
		{ID: "github", Title: "GitHub"},
	}

	state := ComputeInitialVisibility(providers, "", nil)

	if !state.Providers["github"] {
		t.Error("Expected the only provider to be visible")
	}

	if state.ShowMore {
		t.Error("Expected no show-more control without secondary providers")
	}
}
