package workspace

import "context"

type ctxKey struct{}

func With(ctx context.Context, w *Workspace) context.Context {
	return context.WithValue(ctx, ctxKey{}, w)
}

func From(ctx context.Context) (*Workspace, bool) {
	w, ok := ctx.Value(ctxKey{}).(*Workspace)
	return w, ok && w != nil
}

// MustFrom panics when ctx carries no workspace. Reaching it without one is a
// wiring bug, not a user error.
func MustFrom(ctx context.Context) *Workspace {
	w, ok := From(ctx)
	if !ok {
		panic("workspace: used outside of a bound context")
	}
	return w
}
