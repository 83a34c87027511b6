package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"digitalwill/internal/domain/estate"
	"digitalwill/internal/domain/resource"
	"digitalwill/internal/domain/route"
)

var errAborted = errors.New("aborted")

// asker prompts for one value. ok is false when input ran out.
type asker func(prompt string) (answer string, ok bool)

type pager interface {
	destination() route.Destination
	show(w io.Writer, tab string) error
	add(ctx context.Context, ask asker) error
	remove(id string) bool
}

type field[T any] struct {
	label string
	get   func(T) string
	set   func(*T, string)
}

type page[T resource.Record[T]] struct {
	dest   route.Destination
	list   *resource.List[T]
	dialog *resource.Dialog[T]
	fields []field[T]
	filter func(tab string) (func(T) bool, error)
}

func newPage[T resource.Record[T]](dest route.Destination, list *resource.List[T], fields ...field[T]) *page[T] {
	return &page[T]{
		dest:   dest,
		list:   list,
		dialog: resource.NewDialog(list),
		fields: fields,
	}
}

func (p *page[T]) destination() route.Destination {
	return p.dest
}

func (p *page[T]) show(w io.Writer, tab string) error {
	items := p.list.All()
	if tab != "" {
		if p.filter == nil {
			return fmt.Errorf("%s has no tabs", p.dest.Label())
		}
		keep, err := p.filter(tab)
		if err != nil {
			return err
		}
		items = p.list.Filter(keep)
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "No %s yet.\n", p.list.Config().Plural)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t"+strings.Join(p.list.Headers(), "\t"))
	for i, row := range p.list.Rows(items) {
		fmt.Fprintln(tw, items[i].RecordID()+"\t"+strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// add walks the dialog fields. A blank answer keeps what the draft already
// holds, so a rejected form can be fixed without retyping everything.
func (p *page[T]) add(ctx context.Context, ask asker) error {
	p.dialog.Open()

	for _, f := range p.fields {
		prompt := f.label
		if cur := f.get(p.dialog.Draft()); cur != "" {
			prompt += " [" + cur + "]"
		}
		v, ok := ask(prompt + ": ")
		if !ok {
			p.dialog.Close()
			return errAborted
		}
		if v = strings.TrimSpace(v); v != "" {
			p.dialog.Edit(func(t *T) { f.set(t, v) })
		}
	}

	_, err := p.dialog.Submit(ctx)
	if err != nil {
		p.dialog.Close()
	}
	return err
}

func (p *page[T]) remove(id string) bool {
	_, ok := p.list.Remove(id)
	return ok
}

func pages(l *estate.Lists) []pager {
	docs := newPage(route.Documents, l.Documents,
		field[estate.Document]{"Document name", func(d estate.Document) string { return d.Name }, func(d *estate.Document, v string) { d.Name = v }},
		field[estate.Document]{"Source (upload/scan)", func(d estate.Document) string { return string(d.Source) }, func(d *estate.Document, v string) { d.Source = estate.Source(strings.ToLower(v)) }},
	)
	docs.filter = func(tab string) (func(estate.Document) bool, error) {
		t, err := estate.ParseTab(tab)
		return t.Keep, err
	}

	crypto := newPage(route.Crypto, l.Crypto,
		field[estate.CryptoAsset]{"Asset name", func(a estate.CryptoAsset) string { return a.Name }, func(a *estate.CryptoAsset, v string) { a.Name = v }},
		field[estate.CryptoAsset]{"Type (" + strings.Join(estate.CryptoTypes, ", ") + ")", func(a estate.CryptoAsset) string { return a.Type }, func(a *estate.CryptoAsset, v string) { a.Type = v }},
		field[estate.CryptoAsset]{"Wallet address", func(a estate.CryptoAsset) string { return a.Address }, func(a *estate.CryptoAsset, v string) { a.Address = v }},
		field[estate.CryptoAsset]{"Notes (optional)", func(a estate.CryptoAsset) string { return a.Notes }, func(a *estate.CryptoAsset, v string) { a.Notes = v }},
	)

	nominees := newPage(route.Nominees, l.Nominees,
		field[estate.Nominee]{"Full name", func(n estate.Nominee) string { return n.Name }, func(n *estate.Nominee, v string) { n.Name = v }},
		field[estate.Nominee]{"Email", func(n estate.Nominee) string { return n.Email }, func(n *estate.Nominee, v string) { n.Email = v }},
		field[estate.Nominee]{"Phone", func(n estate.Nominee) string { return n.Phone }, func(n *estate.Nominee, v string) { n.Phone = v }},
		field[estate.Nominee]{"Relationship", func(n estate.Nominee) string { return n.Relationship }, func(n *estate.Nominee, v string) { n.Relationship = v }},
	)

	contacts := newPage(route.Contacts, l.Contacts,
		field[estate.Contact]{"Full name", func(c estate.Contact) string { return c.Name }, func(c *estate.Contact, v string) { c.Name = v }},
		field[estate.Contact]{"Email", func(c estate.Contact) string { return c.Email }, func(c *estate.Contact, v string) { c.Email = v }},
		field[estate.Contact]{"Phone", func(c estate.Contact) string { return c.Phone }, func(c *estate.Contact, v string) { c.Phone = v }},
		field[estate.Contact]{"Contact type", func(c estate.Contact) string { return c.Type }, func(c *estate.Contact, v string) { c.Type = v }},
		field[estate.Contact]{"Company (optional)", func(c estate.Contact) string { return c.Company }, func(c *estate.Contact, v string) { c.Company = v }},
	)

	return []pager{docs, crypto, nominees, contacts}
}
