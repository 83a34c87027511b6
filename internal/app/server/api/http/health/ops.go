package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// probeOp is public so liveness checks work before anyone signs in.
func (h *Handler) probeOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-probe",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Liveness probe",
		Description: "Reports that the server is up and which state the session controller is in.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
