package merge

import "fmt"

// ChangeRecord describes one applied override: the dotted field path, the
// prior value, and the new value. Records are emitted in traversal order.
type ChangeRecord struct {
	Path string
	Old  any
	New  any
}

// String renders the record as "path: old → new" for audit output.
func (r ChangeRecord) String() string {
	return fmt.Sprintf("%s: %v → %v", r.Path, r.Old, r.New)
}

// recorder accumulates change records in emission order.
type recorder struct {
	records []ChangeRecord
}

func (r *recorder) record(path string, oldValue, newValue any) {
	r.records = append(r.records, ChangeRecord{Path: path, Old: oldValue, New: newValue})
}
