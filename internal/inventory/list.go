package inventory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ValidationError reports missing required form fields. It blocks the
// mutation; nothing is changed when it is returned.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

var ErrNotFound = errors.New("record not found")

// Record is any domain record with a PREFIX-NNN identifier.
type Record interface {
	RecordID() string
}

// Confirmer answers the delete confirmation prompt for a record.
type Confirmer func(id string) bool

// ListConfig parameterizes a List for one record type.
type ListConfig[T Record] struct {
	// Prefix is the ID prefix, e.g. "MED".
	Prefix string
	// Validate returns a ValidationError when required fields are missing.
	Validate func(T) error
	// Derive recomputes derived fields (status) in place. Optional.
	Derive func(*T, time.Time)
	// Stamp sets creation-time fields (id, restock date) in place on Add.
	Stamp func(*T, string, time.Time)
}

// List is an in-memory record collection with the CRUD lifecycle shared by
// the list pages. It is not persisted anywhere.
type List[T Record] struct {
	mu    sync.RWMutex
	items []T
	cfg   ListConfig[T]
	now   func() time.Time
}

func NewList[T Record](cfg ListConfig[T], seed []T) *List[T] {
	items := make([]T, len(seed))
	copy(items, seed)
	return &List[T]{items: items, cfg: cfg, now: time.Now}
}

// All returns the records in insertion order.
func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]T(nil), l.items...)
}

func (l *List[T]) Get(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Add validates the record, assigns the next sequential ID, stamps and
// derives fields, and appends. Validation failure aborts before any mutation.
func (l *List[T]) Add(record T) (T, error) {
	var zero T
	if l.cfg.Validate != nil {
		if err := l.cfg.Validate(record); err != nil {
			return zero, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	today := l.now()
	id := NextID(l.cfg.Prefix, recordIDs(l.items))
	if l.cfg.Stamp != nil {
		l.cfg.Stamp(&record, id, today)
	}
	if l.cfg.Derive != nil {
		l.cfg.Derive(&record, today)
	}

	l.items = append(l.items, record)
	return record, nil
}

// Update re-validates, recomputes derived fields, and replaces the record
// with the given id.
func (l *List[T]) Update(id string, record T) (T, error) {
	var zero T
	if l.cfg.Validate != nil {
		if err := l.cfg.Validate(record); err != nil {
			return zero, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, item := range l.items {
		if item.RecordID() != id {
			continue
		}
		if l.cfg.Derive != nil {
			l.cfg.Derive(&record, l.now())
		}
		l.items[i] = record
		return record, nil
	}
	return zero, fmt.Errorf("update %s: %w", id, ErrNotFound)
}

// Delete removes the record with the given id after the confirmation step.
// Without confirmation the list is untouched and false is returned.
func (l *List[T]) Delete(id string, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm(id) {
		return false, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, item := range l.items {
		if item.RecordID() == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true, nil
		}
	}
	return false, fmt.Errorf("delete %s: %w", id, ErrNotFound)
}

// NextID generates the next sequential identifier: max existing numeric
// suffix plus one, zero-padded to three digits.
func NextID(prefix string, existing []string) string {
	max := 0
	for _, id := range existing {
		idx := strings.LastIndex(id, "-")
		if idx < 0 {
			continue
		}
		n, err := strconv.Atoi(id[idx+1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%s-%03d", prefix, max+1)
}

func recordIDs[T Record](items []T) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.RecordID()
	}
	return ids
}
