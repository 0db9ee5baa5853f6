package core

import "github.com/fedackb/ui-framework/pkg/ui/signal"

// Form-level signal names.
const (
	SigSubmit    = "SUBMIT"
	SigClearForm = "CLEAR_FORM"
)

// Form is a non-drawable, non-focusable node that consolidates DATA_OUT
// signals from the widgets beneath it and emits the merged record when
// a SUBMIT signal arrives.
type Form struct {
	*Widget

	defaults signal.Data
	data     signal.Data
}

// NewForm creates a form under the given parent, seeded with default
// field values.
func NewForm(parent *Widget, defaults signal.Data) *Form {
	f := &Form{
		Widget:   New(parent, "Form", Unfocusable(), Undrawable()),
		defaults: defaults.Clone(),
		data:     defaults.Clone(),
	}

	f.Handle(SigClearForm, f.clear)
	f.Handle(signal.SigDataOut, f.consolidate)
	f.Handle(SigSubmit, f.submit)

	return f
}

// Data returns the consolidated form record collected so far.
func (f *Form) Data() signal.Data { return f.data }

// clear resets the form to its defaults and flushes a CLEAR so the
// input widgets below reset their own content.
func (f *Form) clear(signal.Data) {
	f.data = f.defaults.Clone()
	f.Flush(signal.New(signal.SigClear, nil, true))
}

// consolidate collects signal data for eventual submission. The
// reserved provenance keys stay out of the record.
func (f *Form) consolidate(data signal.Data) {
	for k, v := range data {
		if k == signal.KeyName || k == signal.KeyPropagate {
			continue
		}
		f.data[k] = v
	}
}

// submit bubbles the consolidated record.
func (f *Form) submit(signal.Data) {
	f.Bubble(signal.New(signal.SigDataOut, f.data, false))
}
