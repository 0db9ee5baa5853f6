package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fedackb/ui-framework/pkg/ui/signal"
)

func TestTranslatorOutput(t *testing.T) {
	s, _ := newTestSession(t)
	tr := NewTranslator(s.Root())
	field := New(tr.Widget, "field")

	tr.MapOutput("DB_CONNECT", map[string]string{"text": "hostname"})

	var got signal.Data
	var name string
	s.Root().Handle("DB_CONNECT", func(data signal.Data) {
		got = data
		name = data.Name()
	})

	field.Bubble(signal.New(signal.SigDataOut, signal.Data{"text": "localhost"}, false))

	require.NotNil(t, got, "translated signal did not reach the root")
	assert.Equal(t, "DB_CONNECT", name)
	assert.Equal(t, "localhost", got["hostname"])
	_, untranslated := got["text"]
	assert.False(t, untranslated, "original key survived translation")
}

func TestTranslatorOutputUntranslated(t *testing.T) {
	s, _ := newTestSession(t)
	tr := NewTranslator(s.Root())
	field := New(tr.Widget, "field")

	hits := 0
	s.Root().Handle(signal.SigDataOut, func(signal.Data) { hits++ })

	// Without MapOutput the translator re-emits DATA_OUT under the same
	// name from its own position. The re-emission starts above the
	// translator, so it is delivered upward exactly once.
	field.Bubble(signal.New(signal.SigDataOut, signal.Data{"text": "x"}, false))

	assert.Equal(t, 1, hits)
}

func TestTranslatorInput(t *testing.T) {
	s, _ := newTestSession(t)
	tr := NewTranslator(s.Root())
	field := New(tr.Widget, "field")

	tr.MapInput("DB_RESULT", map[string]string{"rows": "table"})

	var got signal.Data
	field.Handle(signal.SigDataIn, func(data signal.Data) { got = data })

	// An application-level signal flushed from above is renamed into the
	// subtree as DATA_IN.
	s.Root().Flush(signal.New("DB_RESULT", signal.Data{"rows": []int{1, 2}}, false))

	require.NotNil(t, got)
	assert.Equal(t, []int{1, 2}, got["table"])
}

func TestTranslatorFocus(t *testing.T) {
	s, _ := newTestSession(t)
	tr := NewTranslator(s.Root())
	field := New(tr.Widget, "field", WithHotkey('f'))

	tr.MapFocus("SHOW_EDITOR", nil)

	s.Root().Flush(signal.New("SHOW_EDITOR", nil, false))

	assert.Equal(t, field, s.Focus(), "flushed FOCUS did not reach the field")
}

func TestTranslatorRequest(t *testing.T) {
	s, _ := newTestSession(t)
	tr := NewTranslator(s.Root())
	field := New(tr.Widget, "field")

	tr.MapRequest("DB_QUERY", nil)

	requested := false
	s.Root().Handle("DB_QUERY", func(signal.Data) { requested = true })

	field.Request()

	assert.True(t, requested, "translated request did not reach the root")
}
