package estate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"digitalwill/internal/domain/notify"
	"digitalwill/internal/domain/resource"
)

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) NewID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	return fmt.Sprintf("new-%d", c.n)
}

func newLists(t *testing.T) (*Lists, *notify.Recorder) {
	t.Helper()
	rec := notify.NewRecorder()
	return NewLists(&counter{}, rec, slog.Default(), Options{}), rec
}

func TestNewLists_Seeds(t *testing.T) {
	l, _ := newLists(t)

	assert.Equal(t, Stats{Documents: 3, Cryptocurrencies: 2, Nominees: 1, Contacts: 4}, l.Stats())

	docs := l.Documents.All()
	assert.Equal(t, "Last Will and Testament", docs[0].Name)
	assert.Equal(t, "Property Deed", docs[1].Name)
	assert.Equal(t, SourceScan, docs[1].Source)

	n := l.Nominees.All()[0]
	assert.Equal(t, StatusConfirmed, n.Status)
	assert.Equal(t, "Daughter", n.Relationship)
}

func TestNewLists_SeedsAreIndependent(t *testing.T) {
	a, _ := newLists(t)
	b, _ := newLists(t)

	a.Contacts.Remove("1")

	assert.Equal(t, 3, a.Contacts.Len())
	assert.Equal(t, 4, b.Contacts.Len())
}

func TestDocuments_AddPrepends(t *testing.T) {
	l, rec := newLists(t)

	doc, err := l.Documents.Add(context.Background(), Document{Name: "Deed", Source: SourceUpload})
	require.NoError(t, err)

	assert.Equal(t, "new-1", doc.ID)
	assert.False(t, doc.Date.IsZero())
	assert.Equal(t, doc, l.Documents.All()[0])
	assert.Equal(t, 4, l.Stats().Documents)

	got := rec.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "Success", got[0].Title)
	assert.Equal(t, `Document "Deed" has been uploaded successfully`, got[0].Description)
}

func TestDocuments_ScanWording(t *testing.T) {
	l, rec := newLists(t)

	_, err := l.Documents.Add(context.Background(), Document{Name: "Passport", Source: SourceScan})
	require.NoError(t, err)

	got := rec.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, `Document "Passport" has been scanned successfully`, got[0].Description)
}

func TestDocuments_BlankNameRejected(t *testing.T) {
	l, rec := newLists(t)

	_, err := l.Documents.Add(context.Background(), Document{Name: "   ", Source: SourceUpload})
	require.Error(t, err)
	assert.True(t, errors.Is(err, resource.ErrValidationIncomplete))
	assert.Equal(t, 3, l.Documents.Len())

	got := rec.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "Please provide a document name", got[0].Description)
	assert.Equal(t, notify.VariantDestructive, got[0].Variant)
}

func TestDocuments_RemoveNotifies(t *testing.T) {
	l, rec := newLists(t)

	_, ok := l.Documents.Remove("2")
	require.True(t, ok)

	got := rec.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "Document deleted", got[0].Title)
	assert.Equal(t, `"Property Deed" has been removed`, got[0].Description)
}

func TestDocumentsOn(t *testing.T) {
	l, _ := newLists(t)

	tests := []struct {
		tab  Tab
		want []string
	}{
		{TabAll, []string{"1", "2", "3"}},
		{TabUploaded, []string{"1", "3"}},
		{TabScanned, []string{"2"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			var ids []string
			for _, d := range l.DocumentsOn(tt.tab) {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestParseTab(t *testing.T) {
	tab, err := ParseTab("")
	require.NoError(t, err)
	assert.Equal(t, TabAll, tab)

	tab, err = ParseTab("Scanned")
	require.NoError(t, err)
	assert.Equal(t, TabScanned, tab)

	_, err = ParseTab("shredded")
	assert.Error(t, err)
}

func TestCrypto_AddAppends(t *testing.T) {
	l, rec := newLists(t)

	a, err := l.Crypto.Add(context.Background(), CryptoAsset{Name: "Cold storage", Type: "Solana", Address: "So1abc"})
	require.NoError(t, err)

	all := l.Crypto.All()
	assert.Equal(t, a, all[len(all)-1])
	assert.Empty(t, a.Notes)

	got := rec.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "Asset added", got[0].Title)
	assert.Equal(t, "Solana wallet has been added to your assets", got[0].Description)
}

func TestCrypto_MissingAddress(t *testing.T) {
	l, rec := newLists(t)

	_, err := l.Crypto.Add(context.Background(), CryptoAsset{Name: "x", Type: "Bitcoin"})

	var verr *resource.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"address"}, verr.Missing)
	assert.Equal(t, 2, l.Crypto.Len())
	assert.Equal(t, 1, rec.Len())
}

func TestNominee_StartsPending(t *testing.T) {
	l, rec := newLists(t)

	n, err := l.Nominees.Add(context.Background(), Nominee{
		Name:         "Tom Johnson",
		Email:        "tom@example.com",
		Phone:        "+1 (555) 000-0000",
		Relationship: "Son",
		Status:       StatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, n.Status)

	got := rec.Drain()
	require.Len(t, got, 1)
	assert.Equal(t, "Tom Johnson has been added as a nominee", got[0].Description)
}

func TestContact_AddAndRemove(t *testing.T) {
	l, rec := newLists(t)

	c, err := l.Contacts.Add(context.Background(), Contact{
		Name:  "Ann Lee",
		Email: "ann@example.com",
		Phone: "+1 (555) 111-2222",
		Type:  "Executor",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, l.Contacts.Len())

	_, ok := l.Contacts.Remove(c.ID)
	require.True(t, ok)
	assert.Equal(t, 4, l.Contacts.Len())

	got := rec.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, "Contact added", got[0].Title)
	assert.Equal(t, "Ann Lee has been removed from your contacts", got[1].Description)
}

func TestContact_Initials(t *testing.T) {
	assert.Equal(t, "RS", Contact{Name: "Robert Smith"}.Initials())
	assert.Equal(t, "", Contact{Name: " "}.Initials())
	assert.Equal(t, "ÉØ", Contact{Name: "émile ørsted"}.Initials())
}

func TestContact_RowsLeadWithInitials(t *testing.T) {
	l, _ := newLists(t)

	assert.Equal(t, []string{"", "Name", "Type", "Company", "Email", "Phone"}, l.Contacts.Headers())
	rows := l.Contacts.Rows(l.Contacts.All())
	require.Len(t, rows, 4)
	assert.Equal(t, "RS", rows[0][0])
	assert.Equal(t, "Robert Smith", rows[0][1])
}

func TestDocument_Rows(t *testing.T) {
	l, _ := newLists(t)

	rows := l.Documents.Rows(l.DocumentsOn(TabScanned))
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Property Deed", "Scan", "Jul 22, 2023"}, rows[0])
	assert.Equal(t, []string{"Document", "Type", "Date Added"}, l.Documents.Headers())
}
