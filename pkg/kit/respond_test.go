package kit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestWriteError(t *testing.T) {
	var body map[string]any
	h := chimw.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, "Alguns materiais não existem no catálogo",
			map[string]any{"materiais_desconhecidos": []string{"Seda"}, "erro": "ignored"})
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/preco", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("code=%d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type=%q", ct)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["erro"] != "Alguns materiais não existem no catálogo" {
		t.Fatalf("erro=%v", body["erro"])
	}
	if list, ok := body["materiais_desconhecidos"].([]any); !ok || len(list) != 1 || list[0] != "Seda" {
		t.Fatalf("materiais_desconhecidos=%v", body["materiais_desconhecidos"])
	}
	if body["request_id"] == nil || body["request_id"] == "" {
		t.Fatalf("request_id missing: %v", body)
	}
}

func TestMetricsAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	cases := []struct {
		name   string
		token  string
		header string
		want   int
	}{
		{name: "open without token", token: "", header: "", want: http.StatusOK},
		{name: "missing header", token: "t0k", header: "", want: http.StatusForbidden},
		{name: "wrong token", token: "t0k", header: "Bearer nope", want: http.StatusForbidden},
		{name: "right token", token: "t0k", header: "Bearer t0k", want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			MetricsAuth(tc.token)(ok).ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("code=%d want %d", rec.Code, tc.want)
			}
		})
	}
}
