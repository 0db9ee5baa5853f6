package core

// NewGroup creates a non-drawable, non-focusable container for grouping
// widgets.
func NewGroup(parent *Widget) *Widget {
	return New(parent, "Group", Unfocusable(), Undrawable())
}

// ContentRegion creates a group inset from this widget's bounds by one
// unit, giving behaviors a padded region to attach content widgets to
// without violating the container's own bounds.
func (w *Widget) ContentRegion() *Widget {
	region := NewGroup(w)
	region.Inset(1)
	return region
}
