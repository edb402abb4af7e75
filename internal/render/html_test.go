package render

import (
	"strings"
	"testing"
)

func TestHTMLFallbackRenderer(t *testing.T) {
	out, err := HTMLFallbackRenderer{}.Render("## Intro\n**key** idea\n- one\n<script>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<div class="theory-content">`,
		"<h2>Intro</h2>",
		"<strong>key</strong> idea",
		"<li>one</li>",
		"&lt;script&gt;",
		"<br>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<script>") {
		t.Error("raw HTML must be escaped")
	}
}

func TestHTMLMarkdownRenderer(t *testing.T) {
	r := NewHTMLMarkdownRenderer("monokai")
	out, err := r.Render("# Heaps\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(out, `<h1 id="heaps">Heaps</h1>`) {
		t.Errorf("missing heading:\n%s", out)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("GFM tables should be enabled:\n%s", out)
	}
}

func TestHTMLCodeRenderer(t *testing.T) {
	r, err := NewHTMLCodeRenderer("monokai")
	if err != nil {
		t.Fatalf("NewHTMLCodeRenderer failed: %v", err)
	}
	out, err := r.RenderFile("main.go", "package main\n")
	if err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	if !strings.Contains(out, "<pre") || !strings.Contains(out, "package") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestHTMLPlainRenderer(t *testing.T) {
	out, _ := HTMLPlainRenderer{}.Render("a < b")
	if out != "<pre><code>a &lt; b</code></pre>" {
		t.Errorf("Render() = %q", out)
	}
}

func TestSelectHTML(t *testing.T) {
	set := SelectHTML(Options{Markdown: true, Highlight: true, CodeStyle: "monokai"})
	if set.Theory.Name() != "html-markdown" || set.Code.Name() != "html-highlight" {
		t.Errorf("unexpected renderers: %s, %s", set.Theory.Name(), set.Code.Name())
	}

	set = SelectHTML(Options{})
	if set.Theory.Name() != "html-fallback" || set.Code.Name() != "html-plain" {
		t.Errorf("unexpected fallback renderers: %s, %s", set.Theory.Name(), set.Code.Name())
	}
}
