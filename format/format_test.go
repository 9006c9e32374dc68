package format

import (
	"testing"

	"github.com/coregx/rex/result"
)

func matchWith(groups ...string) *result.Match {
	rg := make([]result.Group, len(groups))
	pos := 0
	for i, v := range groups {
		rg[i] = result.Group{Captures: []result.Capture{{Start: pos, Length: len(v), Value: v}}}
		pos += len(v)
	}
	return result.NewMatch(rg)
}

func TestRenderLiteralAndGroups(t *testing.T) {
	tests := []struct {
		name     string
		template string
		groups   []string
		want     string
	}{
		{"plain literal", "hello world", []string{"whole"}, "hello world"},
		{"single group", "<0>", []string{"whole"}, "whole"},
		{"mixed", "[<1>] in <0>", []string{"whole", "group1"}, "[group1] in whole"},
		{"escaped angle", "a << b", []string{"whole"}, "a < b"},
		{"stray angle no digit", "a < b", []string{"whole"}, "a < b"},
		{"trailing angle", "a<", []string{"whole"}, "a<"},
		{"double angle shields digit", "<<0>", []string{"whole"}, "<0>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := Compile(tt.template)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tt.template, err)
			}
			got := tpl.Render(matchWith(tt.groups...))
			if got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestRenderOutOfRangeGroupIsEmpty(t *testing.T) {
	tpl, err := Compile("<5>")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	got := tpl.Render(matchWith("whole"))
	if got != "" {
		t.Errorf("Render(<5>) with 1 group = %q, want empty string", got)
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		template string
		wantPos  int
	}{
		{"<12", 3},
		{"<12x", 3},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			_, err := Compile(tt.template)
			if err == nil {
				t.Fatalf("Compile(%q) expected error, got nil", tt.template)
			}
			fe, ok := err.(*FormatError)
			if !ok {
				t.Fatalf("error type = %T, want *FormatError", err)
			}
			if fe.Position != tt.wantPos {
				t.Errorf("Position = %d, want %d", fe.Position, tt.wantPos)
			}
		})
	}
}
