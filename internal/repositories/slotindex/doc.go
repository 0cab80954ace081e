// Package slotindex keeps the ordered list of save-slot names for one scope,
// persisted as party_index.txt with one name per line.
//
// The index does not deduplicate what it reads back; Add refuses duplicates,
// so a file written by this package never contains them. Callers decide when
// to Persist, normally only after Add or Remove reported a change.
package slotindex
