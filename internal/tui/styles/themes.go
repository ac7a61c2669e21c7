package styles

// NewFireTheme creates a fire-inspired red->yellow gradient theme
func NewFireTheme() *Theme {
	return &Theme{
		Name:   "fire",
		IsDark: true,

		// Brand colors - fire gradient
		Primary:   ParseHex("#C0392B"), // Deep red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Accent:    ParseHex("#F39C12"), // Orange

		BgBase:    ParseHex("#2C3E50"), // Slate
		BgSubtle:  ParseHex("#3D566E"),
		BgOverlay: ParseHex("#1B2631"),

		FgBase:     ParseHex("#F5F6FA"),
		FgMuted:    ParseHex("#A0A0A0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1E1E1E"),

		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		Success: ParseHex("#27AE60"),
		Error:   ParseHex("#E74C3C"),
		Warning: ParseHex("#F1C40F"),
		Info:    ParseHex("#3498DB"),
	}
}

// NewOceanTheme creates a teal->blue theme
func NewOceanTheme() *Theme {
	return &Theme{
		Name:   "ocean",
		IsDark: true,

		Primary:   ParseHex("#0E7490"), // Cyan 700
		Secondary: ParseHex("#60A5FA"), // Blue 400
		Accent:    ParseHex("#2DD4BF"), // Teal 400

		BgBase:    ParseHex("#0F172A"), // Slate 900
		BgSubtle:  ParseHex("#334155"), // Slate 700
		BgOverlay: ParseHex("#020617"), // Slate 950

		FgBase:     ParseHex("#F8FAFC"),
		FgMuted:    ParseHex("#CBD5E1"),
		FgSubtle:   ParseHex("#94A3B8"),
		FgInverted: ParseHex("#0F172A"),

		Border:      ParseHex("#334155"),
		BorderFocus: ParseHex("#2DD4BF"),

		Success: ParseHex("#34D399"),
		Error:   ParseHex("#F87171"),
		Warning: ParseHex("#FBBF24"),
		Info:    ParseHex("#60A5FA"),
	}
}

// NewAuroraTheme creates a purple->blue gradient theme
func NewAuroraTheme() *Theme {
	return &Theme{
		Name:   "aurora",
		IsDark: true,

		// Brand colors - purple to blue gradient
		Primary:   ParseHex("#7C3AED"), // Violet
		Secondary: ParseHex("#60A5FA"), // Light blue
		Accent:    ParseHex("#A78BFA"), // Light purple

		BgBase:    ParseHex("#1E1B4B"), // Indigo 950
		BgSubtle:  ParseHex("#312E81"), // Indigo 900
		BgOverlay: ParseHex("#0B0A1F"),

		FgBase:     ParseHex("#F5F3FF"),
		FgMuted:    ParseHex("#C4B5FD"),
		FgSubtle:   ParseHex("#A78BFA"),
		FgInverted: ParseHex("#1E1B4B"),

		Border:      ParseHex("#6366F1"),
		BorderFocus: ParseHex("#A78BFA"),

		Success: ParseHex("#34D399"),
		Error:   ParseHex("#F87171"),
		Warning: ParseHex("#FBBF24"),
		Info:    ParseHex("#60A5FA"),
	}
}
