package logging

// fakeCapabilities is a fixed terminal.Capabilities
type fakeCapabilities struct {
	interactive bool
	color       bool
}

func (f fakeCapabilities) IsInteractive() bool             { return f.interactive }
func (f fakeCapabilities) SupportsColor() bool             { return f.color }
func (f fakeCapabilities) HasExplicitUserPreference() bool { return false }
