package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagPrefersResolver(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "pt-BR")
	tag := ResolveTag(req, func(*http.Request) string { return "es" })
	if got := tag.String(); got != "es" {
		t.Fatalf("tag = %q, want %q", got, "es")
	}
}

func TestResolveTagUsesCookieBeforeAcceptLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es")
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "pt-BR"})
	tag := ResolveTag(req, nil)
	if got := tag.String(); got != "pt-BR" {
		t.Fatalf("tag = %q, want %q", got, "pt-BR")
	}
}

func TestResolveTagFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	tag := ResolveTag(req, nil)
	if got := tag.String(); got != "en" {
		t.Fatalf("tag = %q, want %q", got, "en")
	}
	if got := ResolveTag(nil, nil).String(); got != "en" {
		t.Fatalf("nil request tag = %q, want %q", got, "en")
	}
}

func TestResolveLocalizerSetsLanguageCookie(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es")
	rr := httptest.NewRecorder()

	loc, lang := ResolveLocalizer(rr, req, nil)
	if loc == nil {
		t.Fatal("expected localizer")
	}
	if lang != "es" {
		t.Fatalf("lang = %q, want %q", lang, "es")
	}

	cookies := rr.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == LangCookieName && cookie.Value == "es" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q cookie, got %v", LangCookieName, cookies)
	}
}

func TestEnsureLanguageCookieSkipsWhenAlreadySet(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})
	rr := httptest.NewRecorder()

	_, _ = ResolveLocalizer(rr, req, nil)
	if cookies := rr.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected no cookie rewrite, got %v", cookies)
	}
}
