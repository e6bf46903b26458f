package emotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testResolver(handler http.Handler) (*Resolver, *httptest.Server) {
	srv := httptest.NewServer(handler)
	r := NewResolver()
	r.Service = srv.URL
	r.Client = srv.Client()
	return r, srv
}

func TestResolve_EmptyAccountSkipsNetwork(t *testing.T) {
	called := false
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "")
	if called {
		t.Fatalf("resolver hit the network for an empty account id")
	}
	if m.Len() != 1 {
		t.Fatalf("len: got %d want 1", m.Len())
	}
	if _, ok := m.Get(FallbackName); !ok {
		t.Fatalf("fallback missing")
	}
}

func TestResolve_SingularSetShape(t *testing.T) {
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/users/twitch/123":
			fmt.Fprint(w, `{"emote_set":{"id":"set1"}}`)
		case "/emote-sets/set1":
			fmt.Fprint(w, `{"emotes":[{"name":"OMG","id":"02AA"},{"name":"CatJam","id":"03BB"}]}`)
		default:
			http.NotFound(w, req)
		}
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "123")
	if m.Len() != 3 {
		t.Fatalf("len: got %d want 3 (%#v)", m.Len(), m.Names())
	}
	names := m.Names()
	if names[0] != FallbackName || names[1] != "OMG" || names[2] != "CatJam" {
		t.Fatalf("order: %#v", names)
	}
}

func TestResolve_PluralSetShape(t *testing.T) {
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/users/twitch/123":
			fmt.Fprint(w, `{"emote_sets":[{"id":"setA"},{"id":"setB"}]}`)
		case "/emote-sets/setA":
			fmt.Fprint(w, `{"emotes":[{"name":"OMG","id":"02AA"}]}`)
		default:
			http.NotFound(w, req)
		}
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "123")
	if _, ok := m.Get("OMG"); !ok {
		t.Fatalf("plural shape not resolved: %#v", m.Names())
	}
}

func TestResolve_NoSetIDKeepsFallbackOnly(t *testing.T) {
	setCalled := false
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path == "/users/twitch/123" {
			fmt.Fprint(w, `{"display_name":"someone"}`)
			return
		}
		setCalled = true
		http.NotFound(w, req)
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "123")
	if setCalled {
		t.Fatalf("emote-set lookup ran despite missing set id")
	}
	if m.Len() != 1 {
		t.Fatalf("len: got %d want 1", m.Len())
	}
}

func TestResolve_NetworkErrorsSwallowed(t *testing.T) {
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "123")
	if m == nil || m.Len() != 1 {
		t.Fatalf("expected fallback-only mapping, got %#v", m)
	}
}

func TestResolve_ParseErrorKeepsFallbackOnly(t *testing.T) {
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fmt.Fprint(w, `{not json`)
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "123")
	if m.Len() != 1 {
		t.Fatalf("len: got %d want 1", m.Len())
	}
}

func TestResolve_SkipsIncompleteEntries(t *testing.T) {
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/users/twitch/123":
			fmt.Fprint(w, `{"emote_set":{"id":"set1"}}`)
		case "/emote-sets/set1":
			fmt.Fprint(w, `{"emotes":[{"name":"OnlyName"},{"id":"only-id"},{"name":"OK","id":"04CC"}]}`)
		default:
			http.NotFound(w, req)
		}
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "123")
	if m.Len() != 2 {
		t.Fatalf("len: got %d want 2 (%#v)", m.Len(), m.Names())
	}
	if _, ok := m.Get("OK"); !ok {
		t.Fatalf("valid entry skipped")
	}
}

func TestResolve_DuplicateNamesLastWins(t *testing.T) {
	r, srv := testResolver(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/users/twitch/123":
			fmt.Fprint(w, `{"emote_set":{"id":"set1"}}`)
		case "/emote-sets/set1":
			fmt.Fprint(w, `{"emotes":[{"name":"OMG","id":"first"},{"name":"OMG","id":"second"}]}`)
		default:
			http.NotFound(w, req)
		}
	}))
	defer srv.Close()

	m := r.Resolve(context.Background(), "123")
	if id, _ := m.Get("OMG"); id != "second" {
		t.Fatalf("expected last-wins, got %q", id)
	}
	if m.Len() != 2 {
		t.Fatalf("duplicate name grew the table: %#v", m.Names())
	}
}
