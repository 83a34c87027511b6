package estate

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/resource"
)

type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
	Company string `json:"company,omitempty"`
}

func (c Contact) RecordID() string { return c.ID }
func (c Contact) Label() string    { return c.Name }

func (c Contact) Missing() []string {
	return missing(
		field{"name", c.Name},
		field{"email", c.Email},
		field{"phone", c.Phone},
		field{"type", c.Type},
	)
}

func (c Contact) Stamp(id string, _ time.Time) Contact {
	c.ID = id
	c.Company = strings.TrimSpace(c.Company)
	return c
}

// Initials is what the contact card shows in place of a picture.
func (c Contact) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(c.Name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteString(strings.ToUpper(string(r)))
	}
	return b.String()
}

func ContactKind() resource.Kind[Contact] {
	return resource.Kind[Contact]{
		Name:     "contact",
		Plural:   "contacts",
		Position: resource.Append,
		Seed:     slices.Clone(seedContacts),
		Columns: []resource.Column[Contact]{
			{Header: "", Value: func(c Contact) string { return c.Initials() }},
			{Header: "Name", Value: func(c Contact) string { return c.Name }},
			{Header: "Type", Value: func(c Contact) string { return c.Type }},
			{Header: "Company", Value: func(c Contact) string { return c.Company }},
			{Header: "Email", Value: func(c Contact) string { return c.Email }},
			{Header: "Phone", Value: func(c Contact) string { return c.Phone }},
		},
		Added: func(c Contact) notify.Notification {
			return notify.Info("Contact added", fmt.Sprintf("%s has been added to your contacts", c.Name))
		},
		Removed: func(c Contact) notify.Notification {
			return notify.Info("Contact removed", fmt.Sprintf("%s has been removed from your contacts", c.Name))
		},
	}
}

var seedContacts = []Contact{
	{ID: "1", Name: "Robert Smith", Email: "robert.smith@law.com", Phone: "+1 (555) 234-5678", Type: "Attorney", Company: "Smith & Associates"},
	{ID: "2", Name: "Jessica Taylor", Email: "jessica.taylor@finance.com", Phone: "+1 (555) 345-6789", Type: "Financial Advisor", Company: "Taylor Financial Group"},
	{ID: "3", Name: "Michael Davis", Email: "michael.davis@tax.com", Phone: "+1 (555) 456-7890", Type: "Accountant", Company: "Davis Tax Services"},
	{ID: "4", Name: "Emily Wilson", Email: "emily.wilson@insurance.com", Phone: "+1 (555) 567-8901", Type: "Insurance Agent", Company: "Wilson Insurance"},
}
