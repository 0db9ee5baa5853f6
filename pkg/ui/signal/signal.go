// Package signal implements the typed publish/subscribe bus used for
// cross-tree communication between widgets. Handlers are held weakly:
// an entry whose owner has been destroyed is skipped and pruned rather
// than invoked.
package signal

// Reserved data keys carrying signal provenance, so a receiving handler
// can introspect the name and propagation mode of the signal it was
// invoked for.
const (
	KeyName      = "_name"
	KeyPropagate = "_propagate"
)

// Core signal names produced and consumed by the framework itself.
const (
	SigExit         = "EXIT"
	SigDataIn       = "DATA_IN"
	SigDataOut      = "DATA_OUT"
	SigDataRequest  = "DATA_REQUEST"
	SigFocus        = "FOCUS"
	SigStatusUpdate = "STATUS_UPDATE"
	SigClear        = "CLEAR"
)

// Data is the payload carried by a signal.
type Data map[string]any

// Clone returns a shallow copy of the data.
func (d Data) Clone() Data {
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Name returns the signal name recorded under the reserved key, if any.
func (d Data) Name() string {
	name, _ := d[KeyName].(string)
	return name
}

// Propagate returns the propagation flag recorded under the reserved
// key. Absent entries default to true.
func (d Data) Propagate() bool {
	if v, ok := d[KeyPropagate].(bool); ok {
		return v
	}
	return true
}

// Signal is the unit of communication. Propagate=false means "at most
// one handler processes this"; Propagate=true means every interested
// handler along the path processes it.
type Signal struct {
	Name      string
	Data      Data
	Propagate bool
}

// New builds a signal, copying the given data and stamping the reserved
// provenance keys into the copy. The signal is immutable by convention
// after construction.
func New(name string, data Data, propagate bool) Signal {
	payload := make(Data, len(data)+2)
	for k, v := range data {
		payload[k] = v
	}
	payload[KeyName] = name
	payload[KeyPropagate] = propagate
	return Signal{Name: name, Data: payload, Propagate: propagate}
}

// FromData reconstructs a signal from a payload carrying the reserved
// keys. Returns false if the payload does not identify a signal.
func FromData(data Data) (Signal, bool) {
	name := data.Name()
	if name == "" {
		return Signal{}, false
	}
	return New(name, data, data.Propagate()), true
}
