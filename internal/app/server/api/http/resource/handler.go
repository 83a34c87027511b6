// Package resource serves one estate list over HTTP. The same handler is
// instantiated for every record type.
package resource

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"digitalwill/internal/app/server/api/http/respond"
	"digitalwill/internal/app/workspace"
	domain "digitalwill/internal/domain/resource"
)

// Filter turns the tab query parameter into a predicate.
type Filter[T any] func(tab string) (func(T) bool, error)

type Handler[T domain.Record[T], D Draft[T]] struct {
	list       *domain.List[T]
	path       string
	filter     Filter[T]
	log        *slog.Logger
	middleware huma.Middlewares
}

type Option[T domain.Record[T], D Draft[T]] func(*Handler[T, D])

func WithFilter[T domain.Record[T], D Draft[T]](f Filter[T]) Option[T, D] {
	return func(h *Handler[T, D]) {
		h.filter = f
	}
}

func NewHandler[T domain.Record[T], D Draft[T]](
	path string,
	list *domain.List[T],
	log *slog.Logger,
	middleware huma.Middlewares,
	opts ...Option[T, D],
) *Handler[T, D] {
	h := &Handler[T, D]{
		list:       list,
		path:       path,
		log:        log.With("component", "resource_handler", "path", path),
		middleware: middleware,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler[T, D]) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.listItems)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.remove)
}

func (h *Handler[T, D]) listItems(ctx context.Context, input *listInput) (*listOutput[T], error) {
	items := h.list.All()

	if input.Tab != "" {
		if h.filter == nil {
			return nil, huma.Error400BadRequest(fmt.Sprintf("%s have no tabs", h.path))
		}
		keep, err := h.filter(input.Tab)
		if err != nil {
			return nil, huma.Error400BadRequest(err.Error())
		}
		items = h.list.Filter(keep)
	}

	return &listOutput[T]{
		Body: ListResponse[T]{
			Items:    items,
			Columns:  h.list.Headers(),
			Rows:     h.list.Rows(items),
			Feedback: workspace.MustFrom(ctx).Drain(),
		},
	}, nil
}

func (h *Handler[T, D]) get(_ context.Context, input *getInput) (*getOutput[T], error) {
	rec, ok := h.list.Get(input.ID)
	if !ok {
		return nil, huma.Error404NotFound(fmt.Sprintf("%s %s not found", h.list.Config().Name, input.ID))
	}
	return &getOutput[T]{Body: rec}, nil
}

func (h *Handler[T, D]) create(ctx context.Context, input *createInput[D]) (*createOutput[T], error) {
	rec, err := h.list.Add(ctx, input.Body.Record())
	fb := workspace.MustFrom(ctx).Drain()
	if err != nil {
		if errors.Is(err, domain.ErrValidationIncomplete) {
			return nil, respond.New(http.StatusUnprocessableEntity, err.Error(), fb)
		}
		h.log.Error("add", "error", err)
		return nil, huma.Error500InternalServerError(fmt.Sprintf("add %s: %v", h.list.Config().Name, err))
	}

	return &createOutput[T]{Body: CreateResponse[T]{Item: rec, Feedback: fb}}, nil
}

func (h *Handler[T, D]) remove(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	_, removed := h.list.Remove(input.ID)

	return &deleteOutput{
		Body: DeleteResponse{
			Removed:  removed,
			Feedback: workspace.MustFrom(ctx).Drain(),
		},
	}, nil
}
