package templates

import "golang.org/x/text/message"

// Localizer exposes translated formatting used by web templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T localizes a key with a nil-safe fallback to the key text.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	return loc.Sprintf(key, args...)
}
