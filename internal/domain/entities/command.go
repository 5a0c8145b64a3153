package entities

// Command is a host command a provider wants surfaced somewhere in the UI,
// for example as a clickable status-bar entry.
type Command struct {
	ID        string   `json:"id"                  yaml:"id"                  toml:"id"`
	Label     string   `json:"label,omitempty"     yaml:"label,omitempty"     toml:"label,omitempty"`
	Category  string   `json:"category,omitempty"  yaml:"category,omitempty"  toml:"category,omitempty"`
	Tooltip   string   `json:"tooltip,omitempty"   yaml:"tooltip,omitempty"   toml:"tooltip,omitempty"`
	Arguments []string `json:"arguments,omitempty" yaml:"arguments,omitempty" toml:"arguments,omitempty"`
}

// StatusBarAlignment selects which end of the host status bar an entry sits on.
type StatusBarAlignment int

const (
	StatusBarAlignmentLeft StatusBarAlignment = iota
	StatusBarAlignmentRight
)

// String returns "left" or "right".
func (a StatusBarAlignment) String() string {
	if a == StatusBarAlignmentRight {
		return "right"
	}
	return "left"
}

// MarshalText encodes the alignment by name.
func (a StatusBarAlignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// StatusBarEntry is what gets handed to the host status bar for one element.
type StatusBarEntry struct {
	Text      string             `json:"text"`
	Alignment StatusBarAlignment `json:"alignment"`
	Priority  int                `json:"priority"`
	Command   string             `json:"command,omitempty"`
	Tooltip   string             `json:"tooltip,omitempty"`
}
