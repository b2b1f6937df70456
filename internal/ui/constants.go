package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay  = "▶"
	IconPause = "⏸"
	IconPrev  = "⟨"
	IconNext  = "⟩"
)

// Text fragments
const (
	DashPlaceholder = "—"

	LabelPlay     = "Play"
	LabelPause    = "Pause"
	LabelSupport  = "Support"
	LabelCurrency = "Currency:"

	TabShowcase    = "Showcase"
	TabCollections = "Collections"

	SupportTitle = "Customer Support"
	SupportBody  = "Questions about an order or a piece?\n\nsupport@showkit.example\n+1 (555) 010-7788\nMon-Fri, 9:00-18:00"
)

// Layout sizing
const (
	SlideMinWidth  float32 = 640
	SlideMinHeight float32 = 400

	PriceLabelWidth float32 = 120
)
