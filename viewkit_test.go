package viewkit_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	viewkit "github.com/goliatone/go-viewkit"
)

func TestGenerateHTML(t *testing.T) {
	out, err := viewkit.GenerateHTML(context.Background(), "date-field", "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(out), `type="date"`) {
		t.Fatalf("expected date input in output")
	}
}

func TestEmbeddedFS(t *testing.T) {
	if _, err := fs.Stat(viewkit.EmbeddedTemplates(), "templates/page.tmpl"); err != nil {
		t.Fatalf("page template: %v", err)
	}
	if _, err := fs.Stat(viewkit.EmbeddedAssets(), "viewkit.css"); err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
}
