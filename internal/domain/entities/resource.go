package entities

// ResourceDecorations controls how a changed resource is drawn in the SCM view.
type ResourceDecorations struct {
	Icon          string `json:"icon,omitempty"`
	IconDark      string `json:"iconDark,omitempty"`
	Tooltip       string `json:"tooltip,omitempty"`
	StrikeThrough bool   `json:"strikeThrough,omitempty"`
	Faded         bool   `json:"faded,omitempty"`
	Source        string `json:"source,omitempty"`
	Letter        string `json:"letter,omitempty"`
}

// Splice describes one edit of a sequence: DeleteCount elements removed at
// Start, then ToInsert inserted at the same position.
type Splice[T any] struct {
	Start       int
	DeleteCount int
	ToInsert    []T
}

// Apply returns a new slice with the splice applied to elements. Start and
// DeleteCount are clamped to the bounds of elements.
func (s Splice[T]) Apply(elements []T) []T {
	start := min(max(s.Start, 0), len(elements))
	end := start + min(max(s.DeleteCount, 0), len(elements)-start)

	result := make([]T, 0, len(elements)-(end-start)+len(s.ToInsert))
	result = append(result, elements[:start]...)
	result = append(result, s.ToInsert...)
	return append(result, elements[end:]...)
}
