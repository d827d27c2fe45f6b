package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error     bool                   `json:"error"`
	Type      string                 `json:"type"`
	Message   string                 `json:"message"`
	Code      string                 `json:"code,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ErrorHandler turns errors returned by handlers into JSON responses. In
// debug mode responses also carry causes and stack traces.
type ErrorHandler struct {
	logger *zap.Logger
	debug  bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{logger: logger, debug: debug}
}

// outcome is what Handle learned about an error before writing it
type outcome struct {
	status   int
	response ErrorResponse
	cause    error
}

// Handle writes the response for err. A nil error writes nothing.
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = NewTimeoutError(r.Method + " " + r.URL.Path).WithCause(err)
	}

	out := h.classify(err)
	out.response.Error = true
	out.response.RequestID = requestID(r)

	h.log(r, out)
	h.write(w, out.status, out.response)
}

func (h *ErrorHandler) classify(err error) outcome {
	if domainErr := GetDomainError(err); domainErr != nil {
		out := outcome{
			status: statusOr500(domainErr.StatusCode),
			response: ErrorResponse{
				Type:    string(domainErr.Type),
				Message: domainErr.Message,
				Code:    domainErr.Code,
				Details: domainErr.Details,
			},
			cause: domainErr.Cause,
		}
		// storage failures never leave the process
		if domainErr.Type == DomainInfrastructureError && !h.debug {
			out.response.Details = nil
		}
		return out
	}

	if appErr := GetAppError(err); appErr != nil {
		out := outcome{
			status: statusOr500(appErr.HTTPStatus),
			response: ErrorResponse{
				Type:    string(appErr.Type),
				Message: appErr.Message,
			},
			cause: appErr.Cause,
		}
		if h.debug {
			out.response.Details = map[string]interface{}{"stack_trace": appErr.StackTrace()}
		}
		return out
	}

	out := outcome{
		status: http.StatusInternalServerError,
		response: ErrorResponse{
			Type:    string(ErrorTypeInternal),
			Message: "An internal error occurred",
		},
		cause: err,
	}
	if h.debug {
		out.response.Message = err.Error()
	}
	return out
}

func statusOr500(status int) int {
	if status == 0 {
		return http.StatusInternalServerError
	}
	return status
}

func requestID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return r.Header.Get("X-Request-ID")
}

func (h *ErrorHandler) log(r *http.Request, out outcome) {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", out.status),
		zap.String("request_id", out.response.RequestID),
	}
	if out.response.Code != "" {
		fields = append(fields, zap.String("error_code", out.response.Code))
	}
	if out.cause != nil {
		fields = append(fields, zap.Error(out.cause))
	}
	if len(out.response.Details) > 0 {
		fields = append(fields, zap.Any("details", out.response.Details))
	}

	switch {
	case out.status >= http.StatusInternalServerError:
		h.logger.Error(out.response.Message, fields...)
	case out.status >= http.StatusBadRequest:
		h.logger.Warn(out.response.Message, fields...)
	default:
		h.logger.Info(out.response.Message, fields...)
	}
}

func (h *ErrorHandler) write(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}

// Middleware recovers panics in later handlers and answers them with a 500
func (h *ErrorHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.Handle(w, r, NewInternalError(fmt.Sprintf("panic: %v", rec)))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
