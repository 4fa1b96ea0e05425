package authn

import (
	"context"
	"strings"

	"github.com/invopop/ctxi18n/i18n"
)

// translated resolves a translation key, falling back to the given default
// when no locale is attached to the context or the key is missing.
func translated(ctx context.Context, key string, fallback string) string {
	value := i18n.T(ctx, key)
	if value == "" || strings.HasPrefix(value, "!") {
		return fallback
	}

	return value
}
