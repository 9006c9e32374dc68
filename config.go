package rex

// Config tunes pattern compilation. The zero Config does not pass Validate
// (MaxRecursionDepth must be at least 1), although CompileWithConfig first
// fills zero tunables with their defaults (see withDefaults); use
// DefaultConfig and override only what you need.
type Config struct {
	// CaseInsensitive makes every literal and character range in the
	// pattern match without regard to ASCII case.
	CaseInsensitive bool

	// EnablePrefilter lets Compile extract a literal alternation from the
	// pattern (e.g. "(foo|bar|baz)") and build an Aho-Corasick/SIMD
	// prefilter for it, so Find/FindAll can skip straight to candidate
	// positions instead of trying the atom tree at every offset. A pattern
	// led by a required character class (e.g. `\d+`, `[aeiou]`) instead
	// gets a class prefilter that narrows only the first byte; other
	// patterns are unaffected either way.
	EnablePrefilter bool

	// MaxRecursionDepth bounds how deeply groups may nest in a pattern,
	// guarding the parser's recursive descent against pathological input.
	// Zero or negative is replaced with the default.
	MaxRecursionDepth int

	// MinPrefilterLiteralLen is the shortest literal EnablePrefilter will
	// bother building a prefilter for; shorter literals give the
	// automaton/SIMD scan too little to filter on to be worth the setup.
	MinPrefilterLiteralLen int

	// Multiline, Singleline and Unicode are reserved for future modes
	// (per-line anchors, dot-matches-newline, rune-aware scanning). They
	// are accepted but not yet wired to any behavior.
	Multiline  bool
	Singleline bool
	Unicode    bool
}

const (
	defaultMaxRecursionDepth      = 64
	defaultMinPrefilterLiteralLen = 2
)

// DefaultConfig returns the configuration Compile uses.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:        true,
		MaxRecursionDepth:      defaultMaxRecursionDepth,
		MinPrefilterLiteralLen: defaultMinPrefilterLiteralLen,
	}
}

// withDefaults fills in zero-valued tunables that have no valid zero
// meaning, so a caller-constructed Config{CaseInsensitive: true} gets
// DefaultConfig's MaxRecursionDepth and MinPrefilterLiteralLen.
// EnablePrefilter is not filled in: it stays false unless the caller sets it.
func (c Config) withDefaults() Config {
	if c.MaxRecursionDepth <= 0 {
		c.MaxRecursionDepth = defaultMaxRecursionDepth
	}
	if c.MinPrefilterLiteralLen <= 0 {
		c.MinPrefilterLiteralLen = defaultMinPrefilterLiteralLen
	}
	return c
}

// Validate checks that c's tunables fall within their accepted ranges.
// Returns a non-nil *ConfigError naming the first offending field.
//
// Valid ranges:
//   - MaxRecursionDepth: 1 to 1,000
//   - MinPrefilterLiteralLen: 1 to 64 (only checked when EnablePrefilter)
//
// Example:
//
//	cfg := rex.Config{MaxRecursionDepth: -1} // Invalid!
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
func (c Config) Validate() *ConfigError {
	if c.MaxRecursionDepth < 1 || c.MaxRecursionDepth > 1_000 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must be between 1 and 1,000",
		}
	}
	if c.EnablePrefilter {
		if c.MinPrefilterLiteralLen < 1 || c.MinPrefilterLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinPrefilterLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
	}
	return nil
}

// ConfigError reports an out-of-range Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rex: invalid config: " + e.Field + ": " + e.Message
}
