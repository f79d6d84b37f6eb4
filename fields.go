package structlog

// Fields is the structured key/value payload attached to a log entry.
// Keys are unique; writing an existing key overwrites the previous value.
// Iteration order is map order and is not part of any output contract.
type Fields map[string]any

// clone returns a shallow snapshot of the fields. Dispatch clones the
// accumulated fields into the Entry so later mutations through the
// builder never reach an entry that is already in flight.
func (f Fields) clone() Fields {
	if len(f) == 0 {
		return Fields{}
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
