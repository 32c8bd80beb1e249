// Package i18n resolves request language and localized printers for web
// handlers and templates.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// LangCookieName stores the viewer's language preference.
const LangCookieName = "lang"

// Localizer exposes translated formatting used by templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var supported = []language.Tag{
	language.English,
	language.Spanish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// ResolveTag resolves the request language: an explicit resolver wins,
// then the language cookie, then Accept-Language, then English.
func ResolveTag(r *http.Request, resolveLanguage func(*http.Request) string) language.Tag {
	if resolveLanguage != nil {
		if tag, ok := parseTag(resolveLanguage(r)); ok {
			return tag
		}
	}
	if r != nil {
		if cookie, err := r.Cookie(LangCookieName); err == nil {
			if tag, ok := parseTag(cookie.Value); ok {
				return tag
			}
		}
		if tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
			tag, _, _ := matcher.Match(tags...)
			return canonical(tag)
		}
	}
	return language.English
}

// EnsureLanguageCookie syncs the language cookie to the resolved tag.
func EnsureLanguageCookie(w http.ResponseWriter, r *http.Request, tag language.Tag) {
	if w == nil {
		return
	}
	expected := strings.TrimSpace(tag.String())
	if expected == "" {
		return
	}
	if r != nil {
		if cookie, err := r.Cookie(LangCookieName); err == nil {
			if strings.TrimSpace(cookie.Value) == expected {
				return
			}
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    expected,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLocalizer resolves a localized printer and language string for a request.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage func(*http.Request) string) (*message.Printer, string) {
	tag := ResolveTag(r, resolveLanguage)
	EnsureLanguageCookie(w, r, tag)
	return message.NewPrinter(tag), tag.String()
}

func parseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(raw)
	if err != nil {
		return language.Tag{}, false
	}
	tag, _, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return canonical(tag), true
}

// canonical strips matcher extensions so cookie values stay stable.
func canonical(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	region, _ := tag.Region()
	clean, err := language.Compose(base, region)
	if err != nil {
		return tag
	}
	return clean
}
