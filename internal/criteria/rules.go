package criteria

// Default thresholds for the built-in rules.
const (
	DefaultMaxPages      = 1
	DefaultMaxFileSizeKB = 500
	DefaultMaxFonts      = 4
)

// DefaultRequiredSections are the section keywords expected in a résumé.
func DefaultRequiredSections() []string {
	return []string{"experience", "education", "skills"}
}

// Rules carries the configurable thresholds of the built-in criteria. Zero
// values fall back to the defaults above.
type Rules struct {
	MaxPages         int      `mapstructure:"max-pages"`
	MaxFileSizeKB    int      `mapstructure:"max-file-size-kb"`
	MaxFonts         int      `mapstructure:"max-fonts"`
	RequiredSections []string `mapstructure:"required-sections"`
	RequireHTTPS     bool     `mapstructure:"require-https"`
	CustomWords      []string `mapstructure:"custom-words"`
}

// DefaultRules returns the rule thresholds used when no configuration is
// supplied.
func DefaultRules() *Rules {
	return &Rules{
		MaxPages:         DefaultMaxPages,
		MaxFileSizeKB:    DefaultMaxFileSizeKB,
		MaxFonts:         DefaultMaxFonts,
		RequiredSections: DefaultRequiredSections(),
		RequireHTTPS:     true,
	}
}

// normalized fills unset thresholds with defaults so criteria constructors
// never see zero limits.
func (r *Rules) normalized() *Rules {
	out := DefaultRules()
	if r == nil {
		return out
	}
	if r.MaxPages > 0 {
		out.MaxPages = r.MaxPages
	}
	if r.MaxFileSizeKB > 0 {
		out.MaxFileSizeKB = r.MaxFileSizeKB
	}
	if r.MaxFonts > 0 {
		out.MaxFonts = r.MaxFonts
	}
	if len(r.RequiredSections) > 0 {
		out.RequiredSections = r.RequiredSections
	}
	out.RequireHTTPS = r.RequireHTTPS
	out.CustomWords = r.CustomWords
	return out
}
