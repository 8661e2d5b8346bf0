package records

import "path/filepath"

// Record is one candidate file known to the host project.
type Record struct {
	Name  string // leaf file name
	Dir   string // containing directory
	Group string // owning project
}

// Key identifies a record across sessions.
func (r Record) Key() string {
	return filepath.Join(r.Dir, r.Name)
}

// Path is the full path handed to the open collaborator.
func (r Record) Path() string {
	return r.Key()
}

// Store holds the records of one picker session. It is never mutated after
// construction.
type Store struct {
	records []Record
}

// NewStore copies recs into a new store.
func NewStore(recs []Record) *Store {
	owned := make([]Record, len(recs))
	copy(owned, recs)
	return &Store{records: owned}
}

// Len returns the number of records.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.records)
}

// At returns the record at index i.
func (s *Store) At(i int) Record {
	return s.records[i]
}
