package dashboard

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) dashboardOp() huma.Operation {
	return huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/api/dashboard",
		Summary:     "Overview of the estate",
		Tags:        []string{"dashboard"},
		Middlewares: h.middleware,
	}
}
