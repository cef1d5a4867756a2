package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"sync"
	"time"
)

// storedCookie is the serialized form of one persisted cookie.
type storedCookie struct {
	URL     string    `json:"url"`
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// fileJar wraps the stdlib cookie jar with disk persistence so the session
// cookie survives process restarts. This is the client-side half of the
// "ambient credential": the backend owns the session, the jar only carries
// the reference.
type fileJar struct {
	mu    sync.Mutex
	inner http.CookieJar
	path  string
	seen  map[string]storedCookie
}

// newFileJar loads persisted cookies from path, if any. An empty path yields
// an in-memory jar.
func newFileJar(path string) (*fileJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &fileJar{inner: inner, path: path, seen: make(map[string]storedCookie)}
	if path == "" {
		return j, nil
	}
	if err := j.load(); err != nil {
		return nil, err
	}
	return j, nil
}

func (j *fileJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.inner.SetCookies(u, cookies)

	j.mu.Lock()
	defer j.mu.Unlock()
	for _, c := range cookies {
		key := u.Host + "/" + c.Name
		if c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now())) {
			delete(j.seen, key)
			continue
		}
		j.seen[key] = storedCookie{
			URL:     u.Scheme + "://" + u.Host,
			Name:    c.Name,
			Value:   c.Value,
			Path:    c.Path,
			Expires: c.Expires,
		}
	}
	j.persist()
}

func (j *fileJar) Cookies(u *url.URL) []*http.Cookie {
	return j.inner.Cookies(u)
}

// Clear drops all cookies, in memory and on disk.
func (j *fileJar) Clear() error {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner = inner
	j.seen = make(map[string]storedCookie)
	if j.path == "" {
		return nil
	}
	if err := os.Remove(j.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cookie jar: %w", err)
	}
	return nil
}

// load replays persisted cookies into the inner jar, skipping expired ones.
func (j *fileJar) load() error {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var cookies []storedCookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		// A corrupt jar is equivalent to no session; start clean.
		return nil
	}

	now := time.Now()
	for _, sc := range cookies {
		if !sc.Expires.IsZero() && sc.Expires.Before(now) {
			continue
		}
		u, err := url.Parse(sc.URL)
		if err != nil {
			continue
		}
		j.inner.SetCookies(u, []*http.Cookie{{
			Name:    sc.Name,
			Value:   sc.Value,
			Path:    sc.Path,
			Expires: sc.Expires,
		}})
		j.seen[u.Host+"/"+sc.Name] = sc
	}
	return nil
}

// persist writes the current cookie set to disk. Callers hold j.mu.
// Persistence failures are silent: a lost cookie only means a re-login.
func (j *fileJar) persist() {
	if j.path == "" {
		return
	}
	cookies := make([]storedCookie, 0, len(j.seen))
	for _, sc := range j.seen {
		cookies = append(cookies, sc)
	}
	data, err := json.Marshal(cookies)
	if err != nil {
		return
	}
	os.WriteFile(j.path, data, 0o600)
}
