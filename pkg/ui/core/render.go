package core

import "github.com/fedackb/ui-framework/pkg/ui/backend"

// TagRedraw marks this widget for repaint during the next draw pass and
// propagates the tag through its links, recursively, so cross-tree
// dependents repaint with it. Already-tagged nodes stop the recursion,
// which keeps cyclic link sets terminating.
func (w *Widget) TagRedraw() {
	w.tagged = true
	for _, link := range w.links {
		if !link.Gone() && !link.tagged {
			link.TagRedraw()
		}
	}
}

// drawTagged walks the tree searching for tagged subtrees. Hidden
// subtrees are skipped entirely: no recursion, no drawing, and no tag
// clearing, so a hidden tagged subtree stays tagged until shown.
func (w *Widget) drawTagged(target backend.RenderTarget) {
	if !w.visible {
		return
	}
	if w.tagged {
		w.drawTree(target)
		return
	}
	// A node may be clean while a descendant is dirty.
	for _, child := range w.children {
		child.drawTagged(target)
	}
}

// drawTree repaints the subtree rooted at this widget unconditionally: a
// tagged ancestor forces a full subtree repaint, since its background
// fill may have overwritten child content.
func (w *Widget) drawTree(target backend.RenderTarget) {
	if !w.visible {
		return
	}
	w.tagged = false

	if w.drawable {
		p := w.painter(target)
		p.Fill(w.Style("fill"))
		w.behavior.Draw(p)
	}

	for _, child := range w.children {
		child.drawTree(target)
	}
}
