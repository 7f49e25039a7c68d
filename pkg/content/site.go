package content

// Site is the page chrome: header, tagline and footer shared by all sections.
type Site struct {
	Name    string // short name, e.g. "ADPF"
	Title   string
	Tagline string
	Footer  []string
}

func adpfSite() Site {
	return Site{
		Name:    "ADPF",
		Title:   "ADPF - Archetypal Dynamics Prosperity Framework",
		Tagline: "Consciousness-aligned architecture for intelligent, ethical systems.",
		Footer: []string{
			"© 2025 ADPF | Crafted by Joris Van Roosbroeck",
			"✨ An open-source initiative by My-Net BV ✨",
		},
	}
}
