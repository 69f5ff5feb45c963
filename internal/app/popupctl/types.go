package popupctl

// Type identifies a modal popup.
type Type int

const (
	None Type = iota
	Help
	About
	Error
)

// Priority defines which popup receives keys (highest priority first).
var Priority = []Type{
	Error,
	Help,
	About,
}

// RenderOrder defines the order popups are drawn (bottom to top).
var RenderOrder = []Type{
	About,
	Help,
	Error,
}
