package rex

import (
	"testing"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"digit class", `\d+`, false},
		{"word class", `\w+`, false},
		{"alternation", "foo|bar", false},
		{"quantifier", "a+", false},
		{"group", "(ab)+c", false},
		{"char class", "[a-z]+", false},
		{"unbalanced group", "(ab", true},
		{"dangling quantifier", "*abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
		})
	}
}

func TestMustCompilePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile should have panicked on an invalid pattern")
		}
	}()
	MustCompile("(ab")
}

func TestPatternFind(t *testing.T) {
	re := MustCompile(`\d+`)
	m, ok := re.Find([]byte("order 42 shipped"), 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Value() != "42" || m.Start() != 6 {
		t.Errorf("Find = (%q @ %d), want (\"42\" @ 6)", m.Value(), m.Start())
	}
}

func TestPatternFindAll(t *testing.T) {
	re := MustCompile(`\d+`)
	matches := re.FindAll([]byte("a1 b22 c333"), 0)
	if len(matches) != 3 {
		t.Fatalf("FindAll returned %d matches, want 3", len(matches))
	}
	want := []string{"1", "22", "333"}
	for i, m := range matches {
		if m.Value() != want[i] {
			t.Errorf("matches[%d] = %q, want %q", i, m.Value(), want[i])
		}
	}
}

func TestPatternMatchAt(t *testing.T) {
	re := MustCompile(`bc`)
	if _, ok := re.MatchAt([]byte("abcd"), 1); !ok {
		t.Error("expected a match at position 1")
	}
	if _, ok := re.MatchAt([]byte("abcd"), 0); ok {
		t.Error("expected no match at position 0")
	}
}

func TestPatternNumSubexp(t *testing.T) {
	re := MustCompile(`(\w+)@(\w+)`)
	if got := re.NumSubexp(); got != 3 {
		t.Errorf("NumSubexp() = %d, want 3 (whole match + 2 groups)", got)
	}
}

func TestPatternString(t *testing.T) {
	const pattern = `\d{3}-\d{4}`
	re := MustCompile(pattern)
	if got := re.String(); got != pattern {
		t.Errorf("String() = %q, want %q", got, pattern)
	}
}

func TestCaseInsensitiveConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaseInsensitive = true
	re, err := CompileWithConfig("hello", cfg)
	if err != nil {
		t.Fatalf("CompileWithConfig error: %v", err)
	}
	if _, ok := re.Find([]byte("say HELLO now"), 0); !ok {
		t.Error("case-insensitive pattern should match differently-cased text")
	}
}

func TestPrefilterMatchesSameAsWithout(t *testing.T) {
	withPF := MustCompile(`cat|dog|bird`)
	cfg := DefaultConfig()
	cfg.EnablePrefilter = false
	withoutPF, err := CompileWithConfig(`cat|dog|bird`, cfg)
	if err != nil {
		t.Fatalf("CompileWithConfig error: %v", err)
	}

	input := []byte("I saw a dog in the park")
	m1, ok1 := withPF.Find(input, 0)
	m2, ok2 := withoutPF.Find(input, 0)
	if ok1 != ok2 {
		t.Fatalf("prefilter changed match outcome: %v vs %v", ok1, ok2)
	}
	if ok1 && (m1.Value() != m2.Value() || m1.Start() != m2.Start()) {
		t.Errorf("prefilter changed match result: (%q @ %d) vs (%q @ %d)",
			m1.Value(), m1.Start(), m2.Value(), m2.Start())
	}
}

// TestClassPrefilterMatchesSameAsWithout exercises buildPrefilter's
// leading-character-class fallback: \d+ has no literal to extract, only a
// leading byte constraint, so it's accelerated by a ClassPrefilter instead
// of a literal one.
func TestClassPrefilterMatchesSameAsWithout(t *testing.T) {
	withPF := MustCompile(`\d+`)
	cfg := DefaultConfig()
	cfg.EnablePrefilter = false
	withoutPF, err := CompileWithConfig(`\d+`, cfg)
	if err != nil {
		t.Fatalf("CompileWithConfig error: %v", err)
	}

	input := []byte("order number 482931 shipped")
	m1, ok1 := withPF.Find(input, 0)
	m2, ok2 := withoutPF.Find(input, 0)
	if ok1 != ok2 {
		t.Fatalf("prefilter changed match outcome: %v vs %v", ok1, ok2)
	}
	if ok1 && (m1.Value() != m2.Value() || m1.Start() != m2.Start()) {
		t.Errorf("prefilter changed match result: (%q @ %d) vs (%q @ %d)",
			m1.Value(), m1.Start(), m2.Value(), m2.Start())
	}
	if ok1 && m1.Value() != "482931" {
		t.Errorf("Value() = %q, want \"482931\"", m1.Value())
	}
}
