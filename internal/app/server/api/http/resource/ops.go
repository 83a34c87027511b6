package resource

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler[T, D]) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "list-" + h.path,
		Method:      http.MethodGet,
		Path:        "/api/" + h.path,
		Summary:     "List " + h.list.Config().Plural,
		Tags:        []string{h.path},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T, D]) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "get-" + h.path,
		Method:      http.MethodGet,
		Path:        "/api/" + h.path + "/{id}",
		Summary:     "Get one " + h.list.Config().Name,
		Tags:        []string{h.path},
		Middlewares: h.middleware,
	}
}

func (h *Handler[T, D]) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "create-" + h.path,
		Method:        http.MethodPost,
		Path:          "/api/" + h.path,
		Summary:       "Add a " + h.list.Config().Name,
		Tags:          []string{h.path},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler[T, D]) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "delete-" + h.path,
		Method:      http.MethodDelete,
		Path:        "/api/" + h.path + "/{id}",
		Summary:     "Remove a " + h.list.Config().Name,
		Description: "Removing an unknown id succeeds with removed=false.",
		Tags:        []string{h.path},
		Middlewares: h.middleware,
	}
}
