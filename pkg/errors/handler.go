package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"eventdeck/pkg/common"
)

// ErrorResponse is the gateway's error response body
type ErrorResponse struct {
	Error     bool                   `json:"error"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ErrorHandler translates application errors into HTTP responses
type ErrorHandler struct {
	logger        *zap.Logger
	defaultStatus int
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger:        logger,
		defaultStatus: http.StatusInternalServerError,
	}
}

// Handle processes an error and sends an HTTP response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	requestID := common.ExtractRequestID(r)

	var status int
	var response ErrorResponse

	if appErr := GetAppError(err); appErr != nil {
		status = appErr.HTTPStatus
		if status == 0 {
			status = h.defaultStatus
		}

		response = ErrorResponse{
			Error:     true,
			Type:      string(appErr.Type),
			Message:   appErr.Message,
			Details:   appErr.Details,
			RequestID: requestID,
		}

		// Validation failures are the caller's problem, everything else is ours
		if appErr.Type == ErrorTypeValidation || appErr.Type == ErrorTypeNotFound {
			h.logger.Debug("request rejected",
				zap.String("type", string(appErr.Type)),
				zap.String("message", appErr.Message),
				zap.String("requestID", requestID),
			)
		} else {
			h.logger.Error("request failed",
				zap.String("type", string(appErr.Type)),
				zap.String("message", appErr.Message),
				zap.Error(appErr.Cause),
				zap.String("requestID", requestID),
			)
		}
	} else {
		status = h.defaultStatus
		response = ErrorResponse{
			Error:     true,
			Type:      string(ErrorTypeInternal),
			Message:   "internal error",
			RequestID: requestID,
		}
		h.logger.Error("unclassified error", zap.Error(err), zap.String("requestID", requestID))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(response); encErr != nil {
		h.logger.Error("failed to encode error response", zap.Error(encErr))
	}
}
