package model

import "time"

// Lifecycle is the soft-delete state shared by users, accounts, transactions and postings.
type Lifecycle struct {
	Active    bool
	DeletedAt *time.Time
}

func NewLifecycle() Lifecycle {
	return Lifecycle{Active: true}
}

func (l *Lifecycle) Deactivate(at time.Time) {
	l.Active = false
	l.DeletedAt = &at
}

func (l *Lifecycle) Activate() {
	l.Active = true
	l.DeletedAt = nil
}
