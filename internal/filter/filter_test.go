package filter

import (
	"strings"
	"testing"
)

const rows = `[
  {"file": "algo_theory.md", "mode": "theory", "kinds": ["copy", "view"]},
  {"file": "parser.rs", "mode": "code", "kinds": ["view"]}
]`

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    string
		wantErr bool
	}{
		{name: "empty expression", expr: "", want: rows},
		{name: "projection", expr: "[].file", want: "[\n  \"algo_theory.md\",\n  \"parser.rs\"\n]\n"},
		{name: "filter by mode", expr: "[?mode=='code'].file", want: "[\n  \"parser.rs\"\n]\n"},
		{name: "no match is null", expr: "[0].label", want: "null\n"},
		{name: "invalid expression", expr: "[?", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(rows, tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_InvalidJSON(t *testing.T) {
	_, err := Apply("not json", "[].file")
	if err == nil || !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("expected invalid JSON error, got %v", err)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("[?mode=='theory'].file") {
		t.Error("expected valid expression")
	}
	if IsValid("[?") {
		t.Error("expected invalid expression")
	}
}
