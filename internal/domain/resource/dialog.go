package resource

import "context"

// Dialog is the add form of a list page. It belongs to one presentation
// goroutine and is not safe for concurrent use.
type Dialog[T Record[T]] struct {
	list  *List[T]
	open  bool
	draft T
}

func NewDialog[T Record[T]](list *List[T]) *Dialog[T] {
	return &Dialog[T]{list: list}
}

func (d *Dialog[T]) Open() {
	d.open = true
}

// Close hides the dialog and keeps whatever was typed.
func (d *Dialog[T]) Close() {
	d.open = false
}

func (d *Dialog[T]) IsOpen() bool {
	return d.open
}

func (d *Dialog[T]) Draft() T {
	return d.draft
}

func (d *Dialog[T]) Edit(fn func(*T)) {
	fn(&d.draft)
}

// Submit adds the draft. On success the form is cleared and closed; on
// failure it stays open with the draft intact.
func (d *Dialog[T]) Submit(ctx context.Context) (T, error) {
	rec, err := d.list.Add(ctx, d.draft)
	if err != nil {
		return rec, err
	}

	var zero T
	d.draft = zero
	d.open = false

	return rec, nil
}
