package fetch

import (
	"context"
	"net/http"
	"net/netip"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><head><style>body{}</style><script>var x = 1;</script></head>
<body>
<nav>Home | About</nav>
<article>
  <h1>On Engines</h1>
  <p>The engine   weaves
  algebraic patterns.</p>
</article>
<footer>copyright</footer>
</body></html>`

func TestExtractTextPrefersArticle(t *testing.T) {
	text, err := ExtractText(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "On Engines The engine weaves algebraic patterns.", text)
}

func TestExtractTextFallsBackToBody(t *testing.T) {
	text, err := ExtractText(strings.NewReader(`<html><body><div>Plain  words</div><script>x()</script></body></html>`))
	require.NoError(t, err)
	assert.Equal(t, "Plain words", text)
}

func TestExtractTextEmpty(t *testing.T) {
	_, err := ExtractText(strings.NewReader(`<html><body><nav>menu</nav></body></html>`))
	assert.ErrorIs(t, err, ErrNoText)
}

func TestFetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/post" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	f := newWithClient(srv.Client())

	text, err := f.FetchText(context.Background(), srv.URL+"/post")
	require.NoError(t, err)
	assert.Contains(t, text, "algebraic patterns")

	_, err = f.FetchText(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "status code 404")

	_, err = f.FetchText(context.Background(), "ftp://example.com/file")
	assert.Error(t, err)
}

func TestFetchTextRefusesNonPublicAddresses(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body><article>internal admin page</article></body></html>`))
	}))
	defer srv.Close()

	f := New(5 * time.Second)

	text, err := f.FetchText(context.Background(), srv.URL+"/admin")
	assert.ErrorIs(t, err, ErrBlockedAddress)
	assert.Empty(t, text)
	assert.Zero(t, hits)
}

func TestFetchTextRefusesRedirectToLoopback(t *testing.T) {
	internal := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><article>secret</article></body></html>`))
	}))
	defer internal.Close()

	// The guarded dialer refuses the first hop already, so the redirect
	// target is never reached either.
	front := httptest.NewServer(http.RedirectHandler(internal.URL, http.StatusFound))
	defer front.Close()

	_, err := New(5 * time.Second).FetchText(context.Background(), front.URL)
	assert.ErrorIs(t, err, ErrBlockedAddress)
}

func TestIsPublic(t *testing.T) {
	blocked := []string{
		"127.0.0.1", "::1", "10.1.2.3", "172.16.0.1", "192.168.1.10",
		"169.254.169.254", "fe80::1", "0.0.0.0", "100.64.0.1", "fd00::1",
	}
	for _, s := range blocked {
		assert.False(t, isPublic(netip.MustParseAddr(s)), s)
	}
	for _, s := range []string{"93.184.216.34", "2606:4700::1111", "8.8.8.8"} {
		assert.True(t, isPublic(netip.MustParseAddr(s)), s)
	}
}

func TestPublicOnlyUnmapsIPv4InIPv6(t *testing.T) {
	err := publicOnly("tcp6", "[::ffff:127.0.0.1]:80", nil)
	assert.ErrorIs(t, err, ErrBlockedAddress)
	assert.NoError(t, publicOnly("tcp4", "8.8.8.8:443", nil))
}
