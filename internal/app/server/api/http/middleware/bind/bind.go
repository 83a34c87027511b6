// Package bind attaches the workspace to every request context.
package bind

import (
	"github.com/danielgtaylor/huma/v2"

	"digitalwill/internal/app/workspace"
)

type Bind struct {
	ws *workspace.Workspace
}

func New(ws *workspace.Workspace) *Bind {
	return &Bind{ws: ws}
}

func (b *Bind) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, workspace.With(ctx.Context(), b.ws)))
	}
}
