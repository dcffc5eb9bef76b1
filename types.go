package streamchat

// Sort directions accepted by the query endpoints.
const (
	SortAscending  = 1
	SortDescending = -1
)

// SortParam is a sort directive for query endpoints.
type SortParam struct {
	Field     string `json:"field"`
	Direction int    `json:"direction"`
}

// normalizeSort renders sort directives into the wire shape the query
// endpoints expect. A nil slice normalizes to an empty list, never
// null.
func normalizeSort(sort []SortParam) []map[string]any {
	fields := make([]map[string]any, 0, len(sort))
	for _, s := range sort {
		fields = append(fields, map[string]any{"field": s.Field, "direction": s.Direction})
	}
	return fields
}
