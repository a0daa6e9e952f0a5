package model

// Serializer is implemented by every row type.
type Serializer interface {
	Serialize() map[string]any
}

// SerializeAll projects a slice of rows, returning an empty (not nil) slice
// so callers encode [] rather than null.
func SerializeAll[T Serializer](rows []T) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Serialize())
	}
	return out
}
