package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/fxconvert-api/internal/api/shared"
	"github.com/phrazzld/fxconvert-api/internal/domain"
	"github.com/phrazzld/fxconvert-api/internal/platform/logger"
	"github.com/phrazzld/fxconvert-api/internal/service"
)

// ConvertHandler serves currency conversion requests.
type ConvertHandler struct {
	conversionService service.ConversionService
	logger            *slog.Logger
}

// NewConvertHandler creates a new ConvertHandler.
func NewConvertHandler(conversionService service.ConversionService, logger *slog.Logger) *ConvertHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConvertHandler{
		conversionService: conversionService,
		logger:            logger.With("handler", "convert"),
	}
}

// Convert handles GET /api/convert?from=&to=&amount= requests.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	query := r.URL.Query()
	req := domain.ConversionRequest{
		From:   query.Get("from"),
		To:     query.Get("to"),
		Amount: query.Get("amount"),
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("conversion request missing parameters",
			"from_present", req.From != "",
			"to_present", req.To != "",
			"amount_present", req.Amount != "")
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgMissingParameters)
		return
	}

	result, err := h.conversionService.Convert(r.Context(), req.From, req.To, req.Amount)
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := MsgConversionFailed
		if status != http.StatusInternalServerError {
			message = GetSafeErrorMessage(err)
		}
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
