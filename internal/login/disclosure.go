package login

// View is the presentation surface the disclosure controller drives. All
// methods are purely presentational: they never perform I/O and never fail.
type View interface {
	ShowProviderButton(id string)
	ShowSecondaryProviders()
	HideShowMoreControl()
	ExpandPasswordPanel()
	ShowProviderForm(id string)
	HideProviderForm(id string)
	FocusProviderForm(id string)
}

// Data is the read-only server-supplied input of the login screen.
type Data struct {
	Providers  List
	LastUsed   string
	FormErrors map[string]string
}

// Controller toggles the visibility of the secondary providers, the
// per-provider inline forms and the password panel in reaction to user
// activations. Transitions are synchronous and presentation-only.
type Controller struct {
	view View
	data Data

	secondaryShown   bool
	passwordExpanded bool
	visible          map[string]bool
	forms            map[string]bool
	focused          string
}

// Initialize computes the initial visibility for the supplied data, applies
// it to the view and returns a controller primed with that state.
func Initialize(view View, data Data) *Controller {
	state := ComputeInitialVisibility(data.Providers, data.LastUsed, data.FormErrors)

	c := &Controller{
		view:    view,
		data:    data,
		visible: state.Providers,
		forms:   state.Forms,
		focused: state.FocusedForm,
	}

	for _, p := range data.Providers.Secondary() {
		if state.Providers[p.ID] {
			view.ShowProviderButton(p.ID)
		}
	}

	if !state.ShowMore {
		view.HideShowMoreControl()
	}

	for id := range state.Forms {
		view.ShowProviderForm(id)
	}

	if state.FocusedForm != "" {
		view.FocusProviderForm(state.FocusedForm)
	}

	if state.PasswordExpanded {
		c.expandPasswordPanel()
	}

	return c
}

// ActivateShowMore reveals every secondary provider and permanently hides
// the affordance for this page load. Further activations are no-ops.
func (c *Controller) ActivateShowMore() {
	if c.secondaryShown {
		return
	}

	c.secondaryShown = true

	for _, p := range c.data.Providers.Secondary() {
		c.visible[p.ID] = true
	}

	c.view.ShowSecondaryProviders()
	c.view.HideShowMoreControl()
}

// ActivateProvider reacts to the activation of a provider button. The
// password method expands the password panel; an in-page provider toggles
// its inline form, focusing its primary input on reveal. Redirect-only
// providers navigate through their link and need no transition here.
func (c *Controller) ActivateProvider(id string) {
	if id == MethodPassword {
		c.expandPasswordPanel()
		return
	}

	p, found := c.data.Providers.ByID(id)
	if !found || !p.InPage || !c.visible[id] {
		return
	}

	if c.forms[id] {
		delete(c.forms, id)
		if c.focused == id {
			c.focused = ""
		}
		c.view.HideProviderForm(id)
		return
	}

	c.forms[id] = true
	c.focused = id
	c.view.ShowProviderForm(id)
	c.view.FocusProviderForm(id)
}

func (c *Controller) expandPasswordPanel() {
	if c.passwordExpanded {
		return
	}

	c.passwordExpanded = true
	c.view.ExpandPasswordPanel()
}

// State reports the controller's current visibility, for renderers that
// materialize it instead of reacting to view calls.
func (c *Controller) State() VisibilityState {
	state := VisibilityState{
		Providers:        make(map[string]bool, len(c.visible)),
		Forms:            make(map[string]bool, len(c.forms)),
		FocusedForm:      c.focused,
		PasswordExpanded: c.passwordExpanded,
		ShowMore:         false,
	}

	for id, visible := range c.visible {
		state.Providers[id] = visible
	}

	for id, shown := range c.forms {
		state.Forms[id] = shown
	}

	if !c.secondaryShown {
		for _, p := range c.data.Providers {
			if !state.Providers[p.ID] {
				state.ShowMore = true
				break
			}
		}
	}

	return state
}
