// Package estate instantiates the generic resource list for the four estate
// record types and bundles them for the dashboard.
package estate

import (
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/resource"
)

type Lists struct {
	Documents *resource.List[Document]
	Crypto    *resource.List[CryptoAsset]
	Nominees  *resource.List[Nominee]
	Contacts  *resource.List[Contact]
}

type Options struct {
	UploadLatency time.Duration
}

func NewLists(ids resource.IDGenerator, notifier notify.Notifier, log *slog.Logger, opts Options) *Lists {
	return &Lists{
		Documents: resource.NewList(DocumentKind(opts.UploadLatency), ids, notifier, log),
		Crypto:    resource.NewList(CryptoKind(), ids, notifier, log),
		Nominees:  resource.NewList(NomineeKind(), ids, notifier, log),
		Contacts:  resource.NewList(ContactKind(), ids, notifier, log),
	}
}

// Close stops every list. Pending uploads are abandoned.
func (l *Lists) Close() {
	l.Documents.Close()
	l.Crypto.Close()
	l.Nominees.Close()
	l.Contacts.Close()
}

// Stats are the dashboard card counts.
type Stats struct {
	Documents        int `json:"documents"`
	Cryptocurrencies int `json:"cryptocurrencies"`
	Nominees         int `json:"nominees"`
	Contacts         int `json:"contacts"`
}

func (l *Lists) Stats() Stats {
	return Stats{
		Documents:        l.Documents.Len(),
		Cryptocurrencies: l.Crypto.Len(),
		Nominees:         l.Nominees.Len(),
		Contacts:         l.Contacts.Len(),
	}
}

// DocumentsOn returns the documents shown on a tab.
func (l *Lists) DocumentsOn(tab Tab) []Document {
	return l.Documents.Filter(tab.Keep)
}

type field struct {
	name  string
	value string
}

func missing(fields ...field) []string {
	var m []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			m = append(m, f.name)
		}
	}
	return m
}
