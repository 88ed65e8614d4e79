package components

import (
	"net/http"
	"testing"

	"github.com/goliatone/go-viewkit/pkg/model"
)

func TestRegistryDescriptorClone(t *testing.T) {
	reg := New()
	builder := model.BuilderFunc(func() model.Node { return model.Text("x") })

	if err := reg.Register("test", Descriptor{Builder: builder, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("test")
	if !ok {
		t.Fatalf("descriptor not found")
	}

	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if len(original.Stylesheets) != 1 || original.Stylesheets[0] != "/a.css" {
		t.Fatalf("registry descriptor mutated: %#v", original.Stylesheets)
	}
	if original.Status != http.StatusOK {
		t.Fatalf("expected default status 200, got %d", original.Status)
	}
}

func TestRegistryRejectsInvalidDescriptors(t *testing.T) {
	reg := New()
	if err := reg.Register("  ", Descriptor{Builder: model.BuilderFunc(nil)}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("nil-builder", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil builder")
	}
}

func TestRegistryStylesheetsDeduplicates(t *testing.T) {
	reg := New()
	builder := model.BuilderFunc(func() model.Node { return model.Text("x") })

	reg.MustRegister("one", Descriptor{Builder: builder, Stylesheets: []string{"/shared.css", "/one.css"}})
	reg.MustRegister("two", Descriptor{Builder: builder, Stylesheets: []string{"/shared.css", "/two.css"}})

	styles := reg.Stylesheets("one", "missing", "two")
	want := []string{"/shared.css", "/one.css", "/two.css"}
	if len(styles) != len(want) {
		t.Fatalf("expected %v, got %v", want, styles)
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, styles)
		}
	}
}

func TestDefaultRegistryPages(t *testing.T) {
	reg := Default()

	if names := reg.Names(); len(names) != 2 || names[0] != NameDateField || names[1] != NameNotFound {
		t.Fatalf("unexpected names: %v", names)
	}

	page, ok := reg.Page(" Not-Found ")
	if !ok {
		t.Fatalf("expected not-found page")
	}
	if page.Status != http.StatusNotFound {
		t.Fatalf("expected 404 status, got %d", page.Status)
	}
	if page.Name != NameNotFound {
		t.Fatalf("expected normalised name, got %q", page.Name)
	}

	if _, ok := reg.Page("missing"); ok {
		t.Fatalf("expected missing page to be absent")
	}
}
