package plugins_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swgen/pkg/plugins"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := plugins.NewRegistry()
	reg.MustRegister("analytics", plugins.Template("https://cdn.example.com/analytics/{version}/plugin.js"))

	builder, ok := reg.Lookup("analytics")
	if !ok {
		t.Fatal("expected analytics to be registered")
	}
	if got, want := builder("1.2"), "https://cdn.example.com/analytics/1.2/plugin.js"; got != want {
		t.Fatalf("builder(1.2) = %q, want %q", got, want)
	}
	if !reg.Has("analytics") || reg.Has("missing") {
		t.Fatal("Has reported unexpected membership")
	}
	if reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", reg.Len())
	}
}

func TestRegistry_RegisterErrors(t *testing.T) {
	reg := plugins.NewRegistry()
	reg.MustRegister("a", plugins.Template("https://a"))

	cases := []struct {
		name    string
		plugin  string
		builder plugins.URLBuilder
	}{
		{name: "empty name", plugin: "  ", builder: plugins.Template("https://x")},
		{name: "nil builder", plugin: "b", builder: nil},
		{name: "url prefix", plugin: "https://x", builder: plugins.Template("https://x")},
		{name: "duplicate", plugin: "a", builder: plugins.Template("https://a")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := reg.Register(tc.plugin, tc.builder); err == nil {
				t.Fatalf("Register(%q) succeeded, want error", tc.plugin)
			}
		})
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	reg := plugins.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		reg.MustRegister(name, plugins.Template("https://x/"+name))
	}

	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, reg.List()); diff != "" {
		t.Fatalf("List mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var reg *plugins.Registry
	if _, ok := reg.Lookup("x"); ok {
		t.Fatal("nil registry lookup succeeded")
	}
	if reg.Len() != 0 || reg.List() != nil {
		t.Fatal("nil registry should be empty")
	}
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	reg := plugins.NewRegistry()
	reg.MustRegister("p", plugins.Template("https://p/{version}"))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !reg.Has("p") {
				t.Error("lookup failed")
			}
		}()
	}
	wg.Wait()
}
