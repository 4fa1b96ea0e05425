package authn

import (
	"regexp"

	"github.com/bornholm/foyer/internal/http/handler/webui/common/form"
	"github.com/bornholm/foyer/internal/login"
)

// Form field names of the password login form.
const (
	fieldUsername   = "username"
	fieldPassword   = "password"
	fieldNext       = "next"
	fieldCharset    = "cs"
	fieldService    = "service"
	fieldIdentifier = "identifier"
)

// charsetMarker is submitted with every password login so the server can
// detect browsers that mangled the form encoding.
const charsetMarker = "✓"

var identifierPattern = regexp.MustCompile(`^\S+$`)

func (h *Handler) newPasswordForm(next string) *form.Form {
	fields := []form.Field{
		{
			Name:       fieldUsername,
			Label:      "Username or email",
			Type:       "text",
			Required:   true,
			Validation: []form.ValidationRule{form.RequiredRule{}},
		},
		{
			Name:       fieldPassword,
			Label:      "Password",
			Type:       "password",
			Required:   true,
			Validation: []form.ValidationRule{form.RequiredRule{}},
		},
		{Name: fieldNext, Type: "hidden"},
		{Name: fieldCharset, Type: "hidden"},
	}

	f := form.New(fields)
	f.Values[fieldNext] = next
	f.Values[fieldCharset] = charsetMarker

	return f
}

// newProviderForm builds the inline identifier form of an in-page provider.
// It submits to the initiation endpoint with the provider preselected.
func (h *Handler) newProviderForm(p login.Provider, next string) *form.Form {
	fields := []form.Field{
		{
			Name:        fieldIdentifier,
			Label:       p.Title + " identifier",
			Type:        "text",
			Required:    true,
			Placeholder: "you@example.com",
			Validation: []form.ValidationRule{
				form.RequiredRule{},
				form.PatternRule{Pattern: identifierPattern, Message: "the identifier must not contain spaces"},
			},
		},
		{Name: fieldService, Type: "hidden"},
		{Name: fieldNext, Type: "hidden"},
	}

	f := form.New(fields)
	f.Values[fieldService] = p.ID
	f.Values[fieldNext] = next

	return f
}
