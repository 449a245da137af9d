package models

type StyleColors struct {
	Primary    string `json:"primary,omitempty"`
	Secondary  string `json:"secondary,omitempty"`
	Accent     string `json:"accent,omitempty"`
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

type StyleTypography struct {
	HeadingFont string `json:"headingFont,omitempty"`
	BodyFont    string `json:"bodyFont,omitempty"`
	FontSize    string `json:"fontSize,omitempty"`
}

type Style struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Colors     StyleColors     `json:"colors"`
	Typography StyleTypography `json:"typography"`
	CustomCSS  string          `json:"customCSS,omitempty"`

	// IsActive is derived from the active-style pointer when styles are
	// read; the stored value is never trusted.
	IsActive bool `json:"isActive"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ActiveStyle is the pointer record at ActiveStyleKey. It is the sole
// source of truth for which style is active.
type ActiveStyle struct {
	StyleID string `json:"styleId"`
}
