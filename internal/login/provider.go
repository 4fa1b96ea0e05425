package login

import "net/url"

// MethodPassword is the pseudo-provider id of the password login method.
const MethodPassword = "password"

// Provider describes an external authentication method shown on the login screen.
type Provider struct {
	ID    string
	Title string
	Icon  string

	// InPage marks providers whose login starts with an inline form on the
	// page (e.g. an identifier-entry provider) instead of an immediate
	// redirect.
	InPage bool
}

// List is an ordered set of providers. Order is supplied by configuration
// and never changed by the UI.
type List []Provider

// primaryCount is the number of leading providers that are always visible.
const primaryCount = 2

func (l List) Primary() List {
	if len(l) <= primaryCount {
		return l
	}

	return l[:primaryCount]
}

func (l List) Secondary() List {
	if len(l) <= primaryCount {
		return nil
	}

	return l[primaryCount:]
}

func (l List) IsSecondary(id string) bool {
	for idx, p := range l {
		if p.ID == id {
			return idx >= primaryCount
		}
	}

	return false
}

func (l List) ByID(id string) (Provider, bool) {
	for _, p := range l {
		if p.ID == id {
			return p, true
		}
	}

	return Provider{}, false
}

// Button is the view model for a single provider button.
type Button struct {
	Provider  Provider
	Href      string
	Visible   bool
	Secondary bool
	LastUsed  bool
}

// Buttons produces one button per provider, in configuration order, linking
// to the login initiation endpoint. The next target is passed through
// unchanged. At most one button carries the last-used marker.
func Buttons(providers List, lastUsed string, endpoint string, next string, state VisibilityState) []Button {
	buttons := make([]Button, 0, len(providers))

	for _, p := range providers {
		buttons = append(buttons, Button{
			Provider:  p,
			Href:      initiationURL(endpoint, p.ID, next),
			Visible:   state.Providers[p.ID],
			Secondary: providers.IsSecondary(p.ID),
			LastUsed:  p.ID == lastUsed,
		})
	}

	return buttons
}

func initiationURL(endpoint string, id string, next string) string {
	values := url.Values{}
	values.Set("service", id)
	if next != "" {
		values.Set("next", next)
	}

	return endpoint + "?" + values.Encode()
}
