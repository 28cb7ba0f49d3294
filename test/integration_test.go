package test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"msgboard/repositories"
	"msgboard/services"
	"msgboard/web"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// startBoard wires the full stack against temp databases and exposes it
// over a real HTTP listener.
func startBoard(t *testing.T) *httptest.Server {
	t.Helper()
	req := require.New(t)

	cfg, err := LoadConfig()
	req.NoError(err)

	location, err := time.LoadLocation(cfg.DisplayTimezone)
	req.NoError(err)

	log := logs.GetLoggerFromString("ERROR")

	db, err := repositories.OpenSQLite(filepath.Join(t.TempDir(), "board.db"))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	sessionsDB, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = sessionsDB.Close() })

	server := web.NewServer(
		log,
		services.NewAuthService(
			repositories.NewUserRepository(db, log),
			repositories.NewSessionRepository(sessionsDB, log, time.Hour),
		),
		services.NewBoardService(repositories.NewMessageRepository(db, log)),
		location,
		time.Hour,
	)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}

func TestBoard_EndToEnd(t *testing.T) {
	req := require.New(t)
	ts := startBoard(t)

	alice := newBrowser(t)
	bob := newBrowser(t)

	// Register both users through the real endpoint.
	for _, u := range []struct{ name, email string }{
		{"alice", "alice@example.com"},
		{"bob", "bob@example.com"},
	} {
		res, err := alice.PostForm(ts.URL+"/register", url.Values{
			"username": {u.name},
			"email":    {u.email},
			"password": {"secret"},
		})
		req.NoError(err)
		req.Equal(http.StatusOK, res.StatusCode)
		req.Equal("User registered successfully", readBody(t, res))
	}

	// Unauthenticated feed access lands on the login page.
	res, err := alice.Get(ts.URL + "/feed")
	req.NoError(err)
	req.Contains(readBody(t, res), "<h1>Login</h1>")

	// Log both browsers in; the client follows the redirect to the feed.
	for browser, name := range map[*http.Client]string{alice: "alice", bob: "bob"} {
		res, err := browser.PostForm(ts.URL+"/login", url.Values{
			"username": {name},
			"password": {"secret"},
		})
		req.NoError(err)
		req.Equal(http.StatusOK, res.StatusCode)
		req.Contains(readBody(t, res), "<h1>Feed</h1>")
	}

	// Alice posts, bob replies; the thread carries both.
	res, err = alice.PostForm(ts.URL+"/messages", url.Values{"content": {"hello from alice"}})
	req.NoError(err)
	readBody(t, res)

	res, err = bob.PostForm(ts.URL+"/reply", url.Values{
		"content":   {"hi alice"},
		"parent_id": {"1"},
	})
	req.NoError(err)
	readBody(t, res)

	res, err = bob.Get(ts.URL + "/feed")
	req.NoError(err)
	feed := readBody(t, res)
	req.Contains(feed, "hello from alice")
	req.Contains(feed, "hi alice")
	req.Less(strings.Index(feed, "hello from alice"), strings.Index(feed, "hi alice"),
		"the reply renders under its parent")

	// Profile shows the rehydrated user.
	res, err = alice.Get(ts.URL + "/profile")
	req.NoError(err)
	req.Contains(readBody(t, res), "alice@example.com")

	// After logout the same browser is unauthenticated again.
	res, err = alice.Get(ts.URL + "/logout")
	req.NoError(err)
	readBody(t, res)

	res, err = alice.Get(ts.URL + "/feed")
	req.NoError(err)
	req.Contains(readBody(t, res), "<h1>Login</h1>")

	// Bob's session is unaffected.
	res, err = bob.Get(ts.URL + "/feed")
	req.NoError(err)
	req.Contains(readBody(t, res), "<h1>Feed</h1>")
}
