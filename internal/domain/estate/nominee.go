package estate

import (
	"fmt"
	"slices"
	"time"

	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/resource"
)

type NomineeStatus string

const (
	StatusPending   NomineeStatus = "pending"
	StatusConfirmed NomineeStatus = "confirmed"
)

type Nominee struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Relationship string        `json:"relationship"`
	Status       NomineeStatus `json:"status"`
}

func (n Nominee) RecordID() string { return n.ID }
func (n Nominee) Label() string    { return n.Name }

func (n Nominee) Missing() []string {
	return missing(
		field{"name", n.Name},
		field{"email", n.Email},
		field{"phone", n.Phone},
		field{"relationship", n.Relationship},
	)
}

// Stamp always starts a nominee as pending, whatever the draft said.
func (n Nominee) Stamp(id string, _ time.Time) Nominee {
	n.ID = id
	n.Status = StatusPending
	return n
}

func NomineeKind() resource.Kind[Nominee] {
	return resource.Kind[Nominee]{
		Name:     "nominee",
		Plural:   "nominees",
		Position: resource.Append,
		Seed:     slices.Clone(seedNominees),
		Columns: []resource.Column[Nominee]{
			{Header: "Name", Value: func(n Nominee) string { return n.Name }},
			{Header: "Contact", Value: func(n Nominee) string { return n.Email + " " + n.Phone }},
			{Header: "Relationship", Value: func(n Nominee) string { return n.Relationship }},
			{Header: "Status", Value: func(n Nominee) string { return string(n.Status) }},
		},
		Added: func(n Nominee) notify.Notification {
			return notify.Info("Nominee added", fmt.Sprintf("%s has been added as a nominee", n.Name))
		},
		Removed: func(n Nominee) notify.Notification {
			return notify.Info("Nominee removed", fmt.Sprintf("%s has been removed from your nominees", n.Name))
		},
	}
}

var seedNominees = []Nominee{
	{ID: "1", Name: "Sarah Johnson", Email: "sarah.johnson@example.com", Phone: "+1 (555) 123-4567", Relationship: "Daughter", Status: StatusConfirmed},
}
