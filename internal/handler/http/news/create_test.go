package news_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lucr-news/internal/handler/http/news"
	newsUC "lucr-news/internal/usecase/news"
)

func TestCreateHandler_Success(t *testing.T) {
	stub := &stubRepo{}
	handler := news.CreateHandler{Svc: newsUC.Service{Repo: stub}}

	body := `{
		"title": "Fed holds rates steady",
		"content": "The Federal Reserve kept its benchmark rate unchanged.",
		"source": "Reuters",
		"url": "https://example.com/fed-rates",
		"published_at": "2026-08-20T09:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status code = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var result news.DTO
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Title != "Fed holds rates steady" {
		t.Errorf("result.Title = %q, want %q", result.Title, "Fed holds rates steady")
	}
	if result.Source != "Reuters" {
		t.Errorf("result.Source = %q, want %q", result.Source, "Reuters")
	}
	if result.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected an assigned ID in the response")
	}
	if len(stub.items) != 1 {
		t.Fatalf("stored items = %d, want 1", len(stub.items))
	}
}

func TestCreateHandler_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing title",
			body: `{"source":"Reuters","url":"https://example.com/a"}`,
		},
		{
			name: "missing source",
			body: `{"title":"t","url":"https://example.com/a"}`,
		},
		{
			name: "missing url",
			body: `{"title":"t","source":"Reuters"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := news.CreateHandler{Svc: newsUC.Service{Repo: &stubRepo{}}}

			req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestCreateHandler_DuplicateURL(t *testing.T) {
	stub := &stubRepo{urlExists: true}
	handler := news.CreateHandler{Svc: newsUC.Service{Repo: stub}}

	body := `{"title":"t","source":"Reuters","url":"https://example.com/dup"}`
	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusConflict)
	}
}

func TestCreateHandler_InvalidPublishedAt(t *testing.T) {
	handler := news.CreateHandler{Svc: newsUC.Service{Repo: &stubRepo{}}}

	body := `{"title":"t","source":"Reuters","url":"https://example.com/a","published_at":"20/08/2026"}`
	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestCreateHandler_MalformedJSON(t *testing.T) {
	handler := news.CreateHandler{Svc: newsUC.Service{Repo: &stubRepo{}}}

	req := httptest.NewRequest(http.MethodPost, "/news", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}
