package estate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/resource"
)

type Source string

const (
	SourceUpload Source = "upload"
	SourceScan   Source = "scan"
)

func (s Source) Valid() bool {
	return s == SourceUpload || s == SourceScan
}

// DisplayName is the label shown in the documents table.
func (s Source) DisplayName() string {
	switch s {
	case SourceUpload:
		return "File Upload"
	case SourceScan:
		return "Scan"
	default:
		return "Unknown"
	}
}

type Document struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Source Source    `json:"source"`
	Date   time.Time `json:"date"`
}

func (d Document) RecordID() string { return d.ID }
func (d Document) Label() string    { return d.Name }

func (d Document) Missing() []string {
	var m []string
	if strings.TrimSpace(d.Name) == "" {
		m = append(m, "name")
	}
	if !d.Source.Valid() {
		m = append(m, "source")
	}
	return m
}

func (d Document) Stamp(id string, now time.Time) Document {
	d.ID = id
	d.Date = now
	return d
}

// Tab partitions the documents page.
type Tab string

const (
	TabAll      Tab = "all"
	TabUploaded Tab = "uploaded"
	TabScanned  Tab = "scanned"
)

func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(s)); t {
	case "":
		return TabAll, nil
	case TabAll, TabUploaded, TabScanned:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tab: %s", s)
	}
}

// Keep reports whether d belongs on tab t.
func (t Tab) Keep(d Document) bool {
	switch t {
	case TabUploaded:
		return d.Source == SourceUpload
	case TabScanned:
		return d.Source == SourceScan
	default:
		return true
	}
}

// UploadLatency is how long adding a document pretends to upload.
const UploadLatency = 1500 * time.Millisecond

func DocumentKind(latency time.Duration) resource.Kind[Document] {
	return resource.Kind[Document]{
		Name:     "document",
		Plural:   "documents",
		Position: resource.Prepend,
		Latency:  latency,
		Seed:     slices.Clone(seedDocuments),
		Columns: []resource.Column[Document]{
			{Header: "Document", Value: func(d Document) string { return d.Name }},
			{Header: "Type", Value: func(d Document) string { return d.Source.DisplayName() }},
			{Header: "Date Added", Value: func(d Document) string { return d.Date.Format("Jan 2, 2006") }},
		},
		Added: func(d Document) notify.Notification {
			verb := "uploaded"
			if d.Source == SourceScan {
				verb = "scanned"
			}
			return notify.Info("Success", fmt.Sprintf("Document %q has been %s successfully", d.Name, verb))
		},
		Removed: func(d Document) notify.Notification {
			return notify.Info("Document deleted", fmt.Sprintf("%q has been removed", d.Name))
		},
		Invalid: func(missing []string) notify.Notification {
			if slices.Contains(missing, "name") {
				return notify.Failure("Error", "Please provide a document name")
			}
			return notify.Failure("Error", "Please choose upload or scan")
		},
	}
}

var seedDocuments = []Document{
	{ID: "1", Name: "Last Will and Testament", Source: SourceUpload, Date: time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)},
	{ID: "2", Name: "Property Deed", Source: SourceScan, Date: time.Date(2023, time.July, 22, 0, 0, 0, 0, time.UTC)},
	{ID: "3", Name: "Insurance Policy", Source: SourceUpload, Date: time.Date(2023, time.September, 7, 0, 0, 0, 0, time.UTC)},
}
