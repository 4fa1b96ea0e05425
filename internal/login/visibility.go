package login

// VisibilityState is the derived, in-memory visibility of every element of
// the login screen. It is recomputed on every render and never persisted.
type VisibilityState struct {
	// Providers maps provider id to button visibility.
	Providers map[string]bool

	// Forms maps provider id to inline form visibility.
	Forms map[string]bool

	// FocusedForm is the id of the in-page form that should receive
	// keyboard focus, if any.
	FocusedForm string

	// PasswordExpanded reports whether the password panel starts expanded.
	PasswordExpanded bool

	// ShowMore reports whether the "show more" affordance is visible.
	ShowMore bool
}

// ComputeInitialVisibility derives the initial visibility of the login
// screen from the configured providers, the remembered login method and the
// per-provider error state supplied by the server render.
//
// The first two providers are always visible. A secondary provider is
// visible when it matches lastUsed or when it carries an inline form error
// (the form cannot be shown while its button is hidden). The "show more"
// affordance is shown while at least one provider remains hidden. The
// password panel starts expanded when lastUsed is the password method or a
// password error is present.
func ComputeInitialVisibility(providers List, lastUsed string, formErrors map[string]string) VisibilityState {
	state := VisibilityState{
		Providers: make(map[string]bool, len(providers)),
		Forms:     make(map[string]bool),
	}

	for idx, p := range providers {
		visible := idx < primaryCount || p.ID == lastUsed

		if p.InPage && formErrors[p.ID] != "" {
			visible = true
			state.Forms[p.ID] = true

			if state.FocusedForm == "" {
				state.FocusedForm = p.ID
			}
		}

		state.Providers[p.ID] = visible

		if !visible {
			state.ShowMore = true
		}
	}

	state.PasswordExpanded = lastUsed == MethodPassword || formErrors[MethodPassword] != ""

	return state
}
