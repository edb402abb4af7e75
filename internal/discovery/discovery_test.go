package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/studiowebux/docpeek/internal/config"
	"github.com/studiowebux/docpeek/internal/fetcher"
	"github.com/studiowebux/docpeek/internal/types"
)

const indexPage = `<!doctype html>
<html><body>
  <section>
    <h2>Sorting</h2>
    <button class="btn copy-btn" data-file="algo_theory.md">Copy <em>theory</em></button>
    <button class="view-btn" data-file="algo_theory.md">View</button>
    <button class="copy-btn" data-file="parser.rs">Copy code</button>
    <button class="copy-btn">No file</button>
    <a class="other" data-file="ignored.txt">ignored</a>
  </section>
</body></html>`

func TestFromHTML(t *testing.T) {
	controls, err := FromHTML(strings.NewReader(indexPage))
	if err != nil {
		t.Fatalf("FromHTML failed: %v", err)
	}

	want := []types.Control{
		{Kind: types.ControlCopy, File: "algo_theory.md", Label: "Copy theory"},
		{Kind: types.ControlView, File: "algo_theory.md", Label: "View"},
		{Kind: types.ControlCopy, File: "parser.rs", Label: "Copy code"},
	}
	if !reflect.DeepEqual(controls, want) {
		t.Errorf("controls = %+v\nwant %+v", controls, want)
	}
}

func TestFromManifest(t *testing.T) {
	manifest := `
files:
  - path: algo_theory.md
    label: Big O
  - path: parser.rs
    view: false
`
	controls, err := FromManifest(strings.NewReader(manifest))
	if err != nil {
		t.Fatalf("FromManifest failed: %v", err)
	}

	want := []types.Control{
		{Kind: types.ControlCopy, File: "algo_theory.md", Label: "Big O"},
		{Kind: types.ControlView, File: "algo_theory.md", Label: "Big O"},
		{Kind: types.ControlCopy, File: "parser.rs"},
	}
	if !reflect.DeepEqual(controls, want) {
		t.Errorf("controls = %+v\nwant %+v", controls, want)
	}
}

func TestFromManifest_Errors(t *testing.T) {
	tests := map[string]string{
		"missing path": "files:\n  - label: nothing\n",
		"bad yaml":     "files: [",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromManifest(strings.NewReader(input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFromManifest_Empty(t *testing.T) {
	controls, err := FromManifest(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(controls) != 0 {
		t.Errorf("expected no controls, got %v", controls)
	}
}

func TestFromGlob(t *testing.T) {
	fsys := fstest.MapFS{
		"b_theory.md":       {Data: []byte("b")},
		"src/parser.rs":     {Data: []byte("fn")},
		"src/deep/lexer.rs": {Data: []byte("fn")},
		"index.html":        {Data: []byte("<html>")},
	}

	controls, err := FromGlob(fsys, []string{"**/*.rs", "*.md", "src/*.rs"})
	if err != nil {
		t.Fatalf("FromGlob failed: %v", err)
	}

	got := UniqueFiles(controls)
	want := []types.FileID{"b_theory.md", "src/deep/lexer.rs", "src/parser.rs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("files = %v, want %v", got, want)
	}
	if len(controls) != 6 {
		t.Errorf("expected copy and view per file, got %d controls", len(controls))
	}
}

func TestFromGlob_InvalidPattern(t *testing.T) {
	if _, err := FromGlob(fstest.MapFS{}, []string{"[unclosed"}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestUniqueFiles(t *testing.T) {
	controls := []types.Control{
		{Kind: types.ControlCopy, File: "b.go"},
		{Kind: types.ControlView, File: "a.go"},
		{Kind: types.ControlView, File: "b.go"},
		{Kind: types.ControlCopy, File: ""},
	}
	got := UniqueFiles(controls)
	want := []types.FileID{"b.go", "a.go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueFiles() = %v, want %v", got, want)
	}
}

func TestRows(t *testing.T) {
	controls := []types.Control{
		{Kind: types.ControlCopy, File: "algo_theory.md"},
		{Kind: types.ControlView, File: "algo_theory.md", Label: "Big O"},
		{Kind: types.ControlCopy, File: "algo_theory.md"},
		{Kind: types.ControlView, File: "parser.rs"},
	}
	rows := Rows(controls)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Label != "Big O" || rows[0].Mode != types.ModeTheory {
		t.Errorf("row 0 = %+v", rows[0])
	}
	if len(rows[0].Kinds) != 2 {
		t.Errorf("kinds should be deduplicated, got %v", rows[0].Kinds)
	}
	if rows[1].Has(types.ControlCopy) || rows[1].Mode != types.ModeCode {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestLoad_Precedence(t *testing.T) {
	fsys := fstest.MapFS{
		"index.html":    {Data: []byte(indexPage)},
		"manifest.yaml": {Data: []byte("files:\n  - path: only.txt\n")},
		"notes.md":      {Data: []byte("n")},
	}
	f := fetcher.NewDir(fsys)
	ctx := context.Background()

	tests := []struct {
		name       string
		mutate     func(*config.Config)
		wantOrigin Origin
		wantFirst  types.FileID
	}{
		{"manifest wins", func(c *config.Config) { c.Manifest = "manifest.yaml" }, OriginManifest, "only.txt"},
		{"index page", func(c *config.Config) {}, OriginIndex, "algo_theory.md"},
		{"missing index scans", func(c *config.Config) { c.Index = "nope.html" }, OriginGlob, "notes.md"},
		{"no index scans", func(c *config.Config) { c.Index = "" }, OriginGlob, "notes.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)

			res, err := Load(ctx, cfg, f)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if res.Origin != tt.wantOrigin {
				t.Errorf("origin = %q, want %q", res.Origin, tt.wantOrigin)
			}
			if files := res.Files(); len(files) == 0 || files[0] != tt.wantFirst {
				t.Errorf("files = %v, want first %q", files, tt.wantFirst)
			}
		})
	}
}

func TestLoad_RemoteIndex(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/course/index.html" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(indexPage))
	}))
	defer srv.Close()

	f, err := fetcher.NewHTTP(srv.URL+"/course", fetcher.Options{})
	if err != nil {
		t.Fatalf("NewHTTP failed: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Source = srv.URL + "/course"

	res, err := Load(context.Background(), cfg, f)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if res.Origin != OriginIndex || len(res.Files()) != 2 {
		t.Errorf("unexpected result: %+v", res)
	}

	cfg.Index = "missing.html"
	if _, err := Load(context.Background(), cfg, f); err == nil {
		t.Error("a missing remote index must be an error")
	}
}
