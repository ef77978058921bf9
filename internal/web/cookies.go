package web

import (
	"net/http"
	"net/url"
	"time"
)

const (
	cookiePrefix = "bk_"
	cookieMaxAge = 365 * 24 * time.Hour
)

// cookieStore is a store.Store over one request's cookies, the browser's
// equivalent of local storage. Writes are visible to later reads in the
// same request.
type cookieStore struct {
	w       http.ResponseWriter
	r       *http.Request
	pending map[string]*string
}

// cookieName keeps any item id a valid cookie token.
func cookieName(key string) string {
	return cookiePrefix + url.QueryEscape(key)
}

func newCookieStore(w http.ResponseWriter, r *http.Request) *cookieStore {
	return &cookieStore{w: w, r: r, pending: map[string]*string{}}
}

func (s *cookieStore) Get(key string) (string, bool, error) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	c, err := s.r.Cookie(cookieName(key))
	if err != nil {
		return "", false, nil
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		return "", false, nil
	}
	return v, true, nil
}

func (s *cookieStore) Set(key, value string) error {
	s.pending[key] = &value
	http.SetCookie(s.w, &http.Cookie{
		Name:     cookieName(key),
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *cookieStore) Remove(key string) error {
	s.pending[key] = nil
	http.SetCookie(s.w, &http.Cookie{
		Name:     cookieName(key),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
