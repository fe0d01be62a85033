package model

// GenericRecord is a schema-agnostic map for any record flowing through a pipeline
type GenericRecord map[string]any

// Clone returns a shallow copy so stages can mutate freely without
// touching the caller's record.
func (r GenericRecord) Clone() GenericRecord {
	out := make(GenericRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
