package document

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const sampleJSON = `{
	"meta": {"title": "folio", "name": "Ada Example"},
	"hero": {"greeting": "Hi, I'm", "name": "Ada Example", "roles": ["Dev", "Writer"]},
	"skills": [{"name": "Languages", "skills": [{"name": "Go", "level": 90}]}]
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	doc, err := Load(context.Background(), writeSample(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Hero == nil || len(doc.Hero.Roles) != 2 {
		t.Fatalf("hero roles = %+v, want 2 roles", doc.Hero)
	}
	if doc.Hero.Roles[0] != "Dev" || doc.Hero.Roles[1] != "Writer" {
		t.Errorf("roles = %v, want [Dev Writer]", doc.Hero.Roles)
	}
	if len(doc.Skills) != 1 || doc.Skills[0].Skills[0].Level != 90 {
		t.Errorf("skills = %+v", doc.Skills)
	}
}

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	doc, err := Load(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Meta == nil || doc.Meta.Title != "folio" {
		t.Errorf("meta = %+v", doc.Meta)
	}
}

func TestLoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := Load(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(context.Background(), path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadEmptySource(t *testing.T) {
	if _, err := Load(context.Background(), "  "); !errors.Is(err, ErrNoSource) {
		t.Fatalf("err = %v, want ErrNoSource", err)
	}
}

func TestMissingSectionsStayNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.json")
	if err := os.WriteFile(path, []byte(`{"hero": {"name": "A"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.Projects != nil {
		t.Error("projects should be nil when absent")
	}
	if doc.About != nil {
		t.Error("about should be nil when absent")
	}
	if doc.Contact != nil {
		t.Error("contact should be nil when absent")
	}
}

func TestDisplayNameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want string
	}{
		{name: "hero wins", doc: &Document{Hero: &Hero{Name: "H"}, Meta: &Meta{Name: "M"}}, want: "H"},
		{name: "meta fallback", doc: &Document{Meta: &Meta{Name: "M"}}, want: "M"},
		{name: "empty", doc: &Document{}, want: ""},
		{name: "nil doc", doc: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
