package login

import "testing"

func TestButtons(t *testing.T) {
	state := ComputeInitialVisibility(testProviders, "twitter", nil)

	buttons := Buttons(testProviders, "twitter", "/auth/external", "/next/page", state)

	if len(buttons) != len(testProviders) {
		t.Fatalf("Expected %d buttons, got %d", len(testProviders), len(buttons))
	}

	// Configuration order is preserved.
	for idx, p := range testProviders {
		if buttons[idx].Provider.ID != p.ID {
			t.Errorf("Expected button %d to be '%s', got '%s'", idx, p.ID, buttons[idx].Provider.ID)
		}
	}

	lastUsed := 0
	for _, b := range buttons {
		if b.LastUsed {
			lastUsed++
			if b.Provider.ID != "twitter" {
				t.Errorf("Expected 'twitter' to carry the last-used marker, got '%s'", b.Provider.ID)
			}
		}
	}

	if lastUsed != 1 {
		t.Errorf("Expected exactly one last-used marker, got %d", lastUsed)
	}

	expectedHref := "/auth/external?next=%2Fnext%2Fpage&service=github"
	if buttons[0].Href != expectedHref {
		t.Errorf("Expected href '%s', got '%s'", expectedHref, buttons[0].Href)
	}
}

func TestButtonsWithoutNext(t *testing.T) {
	state := ComputeInitialVisibility(testProviders, "", nil)

	buttons := Buttons(testProviders, "", "/auth/external", "", state)

	expectedHref := "/auth/external?service=github"
	if buttons[0].Href != expectedHref {
		t.Errorf("Expected href '%s', got '%s'", expectedHref, buttons[0].Href)
	}

	for _, b := range buttons {
		if b.LastUsed {
			t.Errorf("Expected no last-used marker, got one on '%s'", b.Provider.ID)
		}
	}

	if buttons[0].Secondary || buttons[1].Secondary {
		t.Error("Expected the first two providers to be primary")
	}

	if !buttons[2].Secondary || !buttons[3].Secondary {
		t.Error("Expected subsequent providers to be secondary")
	}
}

func TestListPrimarySecondary(t *testing.T) {
	primary := testProviders.Primary()
	if len(primary) != 2 || primary[0].ID != "github" || primary[1].ID != "google" {
		t.Errorf("Expected the first two providers to be primary, got %v", primary)
	}

	secondary := testProviders.Secondary()
	if len(secondary) != 2 || secondary[0].ID != "openid" || secondary[1].ID != "twitter" {
		t.Errorf("Expected the remaining providers to be secondary, got %v", secondary)
	}

	short := List{{ID: "github", Title: "GitHub"}}

	if got := short.Primary(); len(got) != 1 {
		t.Errorf("Expected a short list to be entirely primary, got %v", got)
	}

	if got := short.Secondary(); got != nil {
		t.Errorf("Expected no secondary providers, got %v", got)
	}
}
