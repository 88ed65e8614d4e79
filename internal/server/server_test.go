package server_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-viewkit/internal/server"
	"github.com/goliatone/go-viewkit/pkg/components"
	"github.com/goliatone/go-viewkit/pkg/orchestrator"
	"github.com/goliatone/go-viewkit/pkg/testsupport"
	"github.com/goliatone/go-viewkit/pkg/themes"
)

func newTestServer(t *testing.T, funcs ...server.OptionFunc) *server.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	funcs = append([]server.OptionFunc{
		server.WithLogger(logger),
		server.WithRoute("/date", components.NameDateField),
	}, funcs...)

	store, err := themes.LoadFS(themes.EmbeddedFS())
	if err != nil {
		t.Fatalf("load themes: %v", err)
	}
	selector, err := store.Selector(themes.DefaultTheme, "")
	if err != nil {
		t.Fatalf("theme selector: %v", err)
	}

	srv, err := server.New(orchestrator.New(orchestrator.WithThemeSelector(selector)), funcs...)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func serve(t *testing.T, srv *server.Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_DateFieldRoute(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/date", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}

	doc := testsupport.MustParseHTML(t, rec.Body.Bytes())
	inputs := testsupport.FindElements(doc, "input")
	if len(inputs) != 1 {
		t.Fatalf("expected one input, got %d", len(inputs))
	}
	if typ, _ := testsupport.Attr(inputs[0], "type"); typ != "date" {
		t.Fatalf("expected date input, got %q", typ)
	}
	if id, _ := testsupport.Attr(inputs[0], "id"); id != "dob" {
		t.Fatalf("expected id dob, got %q", id)
	}
}

func TestServer_UnknownPathRendersNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	doc := testsupport.MustParseHTML(t, rec.Body.Bytes())
	headings := testsupport.FindElements(doc, "h2")
	if len(headings) != 1 || testsupport.TextContent(headings[0]) != components.NotFoundHeading {
		t.Fatalf("unexpected headings: %d", len(headings))
	}
	links := testsupport.FindElements(doc, "a")
	if len(links) != 1 {
		t.Fatalf("expected one link, got %d", len(links))
	}
	if href, _ := testsupport.Attr(links[0], "href"); href != "/" {
		t.Fatalf("expected link to /, got %q", href)
	}
	if text := testsupport.TextContent(links[0]); text != components.NotFoundLinkText {
		t.Fatalf("unexpected link text %q", text)
	}
}

func TestServer_JSONNegotiation(t *testing.T) {
	srv := newTestServer(t)

	cases := map[string]*http.Request{
		"format query":   httptest.NewRequest(http.MethodGet, "/date?format=json", nil),
		"renderer query": httptest.NewRequest(http.MethodGet, "/date?renderer=tree", nil),
		"accept header": func() *http.Request {
			req := httptest.NewRequest(http.MethodGet, "/date", nil)
			req.Header.Set("Accept", "application/json")
			return req
		}(),
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			rec := serve(t, srv, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("unexpected content type %q", ct)
			}
			var payload struct {
				Name   string `json:"name"`
				Status int    `json:"status"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if payload.Name != components.NameDateField || payload.Status != http.StatusOK {
				t.Fatalf("unexpected payload: %+v", payload)
			}
		})
	}
}

func TestServer_NotFoundJSON(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/missing?format=json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"name":"not-found"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestServer_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{
		"/date?renderer=pdf",
		"/date?format=xml",
		"/date?theme=missing",
	} {
		rec := serve(t, srv, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestServer_Assets(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/assets/viewkit.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Content-Type"), "text/css") {
		t.Fatalf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
}

func TestServer_ThemeVariantQuery(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/date?variant=dark", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	bodies := testsupport.FindElements(testsupport.MustParseHTML(t, rec.Body.Bytes()), "body")
	if len(bodies) != 1 {
		t.Fatalf("expected one body element")
	}
	if variant, _ := testsupport.Attr(bodies[0], "data-variant"); variant != "dark" {
		t.Fatalf("expected dark variant, got %q", variant)
	}
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected health response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestServer_BaseURL(t *testing.T) {
	srv := newTestServer(t, server.WithBaseURL("/app"))

	rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/app/date", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 under base url, got %d", rec.Code)
	}

	rec = serve(t, srv, httptest.NewRequest(http.MethodGet, "/date", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside base url, got %d", rec.Code)
	}
}

func TestServer_RootRouteIsExact(t *testing.T) {
	srv := newTestServer(t, server.WithRoute("/", components.NameDateField))

	if rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/", nil)); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for root, got %d", rec.Code)
	}
	if rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/other", nil)); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for other path, got %d", rec.Code)
	}
}

func TestNew_UnknownComponent(t *testing.T) {
	_, err := server.New(orchestrator.New(), server.WithRoute("/x", "missing"))
	if err == nil {
		t.Fatalf("expected error for unknown component")
	}
}

func TestNew_RejectsUnusableRoutes(t *testing.T) {
	cases := []struct {
		name   string
		routes map[string]string
	}{
		{"health path", map[string]string{"/healthz": components.NameDateField}},
		{"assets path", map[string]string{"/assets/": components.NameDateField}},
		{"inside assets", map[string]string{"/assets/date": components.NameDateField}},
		{"bad wildcard", map[string]string{"/{id": components.NameDateField}},
		{"same mounted path", map[string]string{
			"/date":  components.NameDateField,
			" /date": components.NameNotFound,
		}},
		{"same path without slash", map[string]string{
			"/date": components.NameDateField,
			"date":  components.NameNotFound,
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := server.New(orchestrator.New(), server.WithRoutes(tc.routes))
			if err == nil {
				t.Fatalf("expected error for routes %v", tc.routes)
			}
		})
	}
}

func TestNew_RejectsConflictingMount(t *testing.T) {
	_, err := server.New(orchestrator.New(), server.WithMount("/", http.NotFoundHandler()))
	if err == nil {
		t.Fatalf("expected error for mount clashing with the not-found handler")
	}
}

func TestServer_Mount(t *testing.T) {
	srv := newTestServer(t,
		server.WithBaseURL("/app"),
		server.WithMount("/api/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "api:"+r.URL.Path)
		})),
	)

	rec := serve(t, srv, httptest.NewRequest(http.MethodPost, "/app/api/items", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from mount, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "api:/app/api/items" {
		t.Fatalf("unexpected mount body %q", got)
	}

	if rec := serve(t, srv, httptest.NewRequest(http.MethodGet, "/api/items", nil)); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside base url, got %d", rec.Code)
	}
}

func TestServer_RouteMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, server.WithRoute("/", components.NameNotFound))

	for _, target := range []string{"/date", "/"} {
		rec := serve(t, srv, httptest.NewRequest(http.MethodPost, target, nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("POST %s: expected 405, got %d", target, rec.Code)
		}
		if got := rec.Header().Get("Allow"); got != "GET, HEAD" {
			t.Fatalf("POST %s: unexpected Allow header %q", target, got)
		}
	}

	if rec := serve(t, srv, httptest.NewRequest(http.MethodHead, "/date", nil)); rec.Code != http.StatusOK {
		t.Fatalf("HEAD /date: expected 200, got %d", rec.Code)
	}
	if rec := serve(t, srv, httptest.NewRequest(http.MethodPost, "/elsewhere", nil)); rec.Code != http.StatusNotFound {
		t.Fatalf("POST /elsewhere: expected 404, got %d", rec.Code)
	}
}

func TestServer_RunShutsDownOnCancel(t *testing.T) {
	srv := newTestServer(t, server.WithShutdownGrace(time.Second))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/date")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}
