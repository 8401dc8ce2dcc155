package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/MargotLh/market-research-assistant/internal/research"
	"github.com/MargotLh/market-research-assistant/internal/service"
	"github.com/MargotLh/market-research-assistant/internal/transport/response"
)

type Research struct {
	researchService *service.Research
}

func NewResearch(researchService *service.Research) *Research {
	return &Research{
		researchService: researchService,
	}
}

type researchRequest struct {
	Industry string `json:"industry"`
	APIKey   string `json:"api_key"`
}

func (h *Research) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := log.New(funcframework.LogWriter(r.Context()), "", 0)

	var req researchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	if req.Industry == "" {
		response.WriteStageError(w, http.StatusBadRequest, string(research.StageValidate), research.ErrEmptyIndustry.Error())
		return
	}

	// The key is forwarded to the model provider per request and never stored.
	if req.APIKey == "" {
		response.WriteStageError(w, http.StatusBadRequest, string(research.StageValidate), "api_key is required")
		return
	}

	result, err := h.researchService.Process(r.Context(), req.Industry, req.APIKey)
	if err != nil {
		logger.Printf("Error researching industry %q: %v", req.Industry, err)
		writeStageFailure(w, err)
		return
	}

	response.WriteSuccess(w, "Research report generated successfully", result)
}

// writeStageFailure maps pipeline failures onto HTTP statuses. Validation
// failures are the caller's fault, retrieval and generation failures come
// from upstream services.
func writeStageFailure(w http.ResponseWriter, err error) {
	var se *research.StageError
	if !errors.As(err, &se) {
		response.WriteInternalError(w, err.Error())
		return
	}

	switch se.Stage {
	case research.StageValidate:
		response.WriteStageError(w, http.StatusBadRequest, string(se.Stage), se.Err.Error())
	default:
		response.WriteStageError(w, http.StatusBadGateway, string(se.Stage), se.Err.Error())
	}
}
