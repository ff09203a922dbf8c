// Package dashboard contains the aggregation use cases backing the overview screen.
package dashboard

import "time"

// DateRange is an inclusive date window. A nil bound leaves that side open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t falls inside the range. Bounds are inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// Valid reports whether the bounds are ordered. An open side is always valid.
func (r DateRange) Valid() bool {
	if r.From == nil || r.To == nil {
		return true
	}
	return !r.From.After(*r.To)
}
