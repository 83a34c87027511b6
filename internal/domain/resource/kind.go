package resource

import (
	"fmt"
	"strings"
	"time"

	"digitalwill/internal/domain/notify"
)

// Record is implemented by every resource type a List can hold.
type Record[T any] interface {
	RecordID() string
	// Label names the record in notifications.
	Label() string
	// Missing returns the required fields that are blank.
	Missing() []string
	// Stamp returns a copy with the generated id and creation defaults set.
	Stamp(id string, now time.Time) T
}

type Position int

const (
	Append Position = iota
	Prepend
)

func (p Position) String() string {
	if p == Prepend {
		return "prepend"
	}
	return "append"
}

type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Kind configures a List for one resource type.
type Kind[T any] struct {
	Name     string
	Plural   string
	Position Position
	// Latency simulates a slow save before the record is inserted.
	Latency time.Duration
	Columns []Column[T]
	Seed    []T

	Added   func(T) notify.Notification
	Removed func(T) notify.Notification
	// Invalid overrides the notification raised for an incomplete draft.
	Invalid func(missing []string) notify.Notification
}

func (k Kind[T]) added(rec T) notify.Notification {
	if k.Added != nil {
		return k.Added(rec)
	}
	return notify.Info(title(k.Name)+" added", fmt.Sprintf("A new %s has been added", k.Name))
}

func (k Kind[T]) removed(rec T, label string) notify.Notification {
	if k.Removed != nil {
		return k.Removed(rec)
	}
	return notify.Info(title(k.Name)+" removed", fmt.Sprintf("%s has been removed", label))
}

func (k Kind[T]) invalid(missing []string) notify.Notification {
	if k.Invalid != nil {
		return k.Invalid(missing)
	}
	return notify.Failure("Error", "Please provide "+strings.Join(missing, ", "))
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
