package core

import "github.com/fedackb/ui-framework/pkg/ui/signal"

// Translator is a non-drawable, non-focusable node that renames data,
// focus, and request signals passing through its position in the tree.
// It decouples generic widget signals (DATA_OUT, DATA_REQUEST) from the
// application-specific names a container wants to speak.
type Translator struct {
	*Widget

	input   map[string]string // data-key renames applied to flushed DATA_IN
	output  map[string]string // data-key renames applied to bubbled output
	focus   map[string]string
	request map[string]string

	outputName  string // target name for translated output signals
	requestName string // target name for translated request signals
}

// NewTranslator creates a translator under the given parent.
func NewTranslator(parent *Widget) *Translator {
	t := &Translator{
		Widget:      New(parent, "Translator", Unfocusable(), Undrawable()),
		input:       make(map[string]string),
		output:      make(map[string]string),
		focus:       make(map[string]string),
		request:     make(map[string]string),
		outputName:  signal.SigDataOut,
		requestName: signal.SigDataRequest,
	}

	t.Handle(signal.SigDataOut, t.translateOutput)
	t.Handle(signal.SigDataRequest, t.translateRequest)

	return t
}

// MapInput listens for the named signal and flushes it into the subtree
// as DATA_IN, renaming data keys by the given pairs.
func (t *Translator) MapInput(name string, pairs map[string]string) {
	t.Handle(name, t.translateInput)
	for k, v := range pairs {
		t.input[k] = v
	}
}

// MapOutput renames bubbled DATA_OUT signals to the given name,
// renaming data keys by the given pairs.
func (t *Translator) MapOutput(name string, pairs map[string]string) {
	t.outputName = name
	for k, v := range pairs {
		t.output[k] = v
	}
}

// MapFocus listens for the named signal and flushes it into the subtree
// as a FOCUS signal, renaming data keys by the given pairs.
func (t *Translator) MapFocus(name string, pairs map[string]string) {
	t.Handle(name, t.translateFocus)
	for k, v := range pairs {
		t.focus[k] = v
	}
}

// MapRequest renames bubbled DATA_REQUEST signals to the given name,
// renaming data keys by the given pairs.
func (t *Translator) MapRequest(name string, pairs map[string]string) {
	t.requestName = name
	for k, v := range pairs {
		t.request[k] = v
	}
}

func translate(section map[string]string, data signal.Data) signal.Data {
	out := make(signal.Data, len(data))
	for k, v := range data {
		if target, ok := section[k]; ok {
			k = target
		}
		out[k] = v
	}
	return out
}

func (t *Translator) translateInput(data signal.Data) {
	t.Flush(signal.New(signal.SigDataIn, translate(t.input, data), false))
}

func (t *Translator) translateOutput(data signal.Data) {
	// Propagate only once renamed; an untranslated DATA_OUT stops here.
	propagate := t.outputName != signal.SigDataOut
	t.Bubble(signal.New(t.outputName, translate(t.output, data), propagate))
}

func (t *Translator) translateFocus(data signal.Data) {
	t.Flush(signal.New(signal.SigFocus, translate(t.focus, data), false))
}

func (t *Translator) translateRequest(data signal.Data) {
	propagate := t.requestName != signal.SigDataRequest
	t.Bubble(signal.New(t.requestName, translate(t.request, data), propagate))
}
