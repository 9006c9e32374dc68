package rex

import "testing"

func TestDefaultConfigPassesValidation(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidateMaxRecursionDepth(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		want  bool // true = Validate should reject
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", 1_001, true},
		{"minimum valid", 1, false},
		{"default", defaultMaxRecursionDepth, false},
		{"maximum valid", 1_000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.MaxRecursionDepth = tt.depth
			err := c.Validate()
			if tt.want && err == nil {
				t.Fatalf("Validate() = nil, want a *ConfigError for MaxRecursionDepth=%d", tt.depth)
			}
			if !tt.want && err != nil {
				t.Fatalf("Validate() = %v, want nil for MaxRecursionDepth=%d", err, tt.depth)
			}
			if tt.want && err.Field != "MaxRecursionDepth" {
				t.Errorf("ConfigError.Field = %q, want %q", err.Field, "MaxRecursionDepth")
			}
		})
	}
}

func TestConfigValidateMinPrefilterLiteralLen(t *testing.T) {
	c := DefaultConfig()
	c.EnablePrefilter = true
	c.MinPrefilterLiteralLen = 0
	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want a *ConfigError for MinPrefilterLiteralLen=0")
	}
	if err.Field != "MinPrefilterLiteralLen" {
		t.Errorf("ConfigError.Field = %q, want %q", err.Field, "MinPrefilterLiteralLen")
	}

	// When EnablePrefilter is false, the same out-of-range value is ignored.
	c.EnablePrefilter = false
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when EnablePrefilter is false", err)
	}
}

func TestConfigErrorIsError(t *testing.T) {
	var err error = &ConfigError{Field: "Test", Message: "test message"}
	if err.Error() == "" {
		t.Error("ConfigError.Error() returned empty string")
	}
}

func TestCompileWithConfigRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRecursionDepth = 2_000
	_, err := CompileWithConfig(`abc`, cfg)
	if err == nil {
		t.Fatal("CompileWithConfig with an out-of-range MaxRecursionDepth should fail")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Errorf("error type = %T, want *ConfigError", err)
	}
}
