package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	reasonBadRequest = "Incorrectly made request."
	reasonConflict   = "Integrity constraint has been violated."
	reasonNotFound   = "The required object was not found."
	reasonForbidden  = "For the requested operation the conditions are not met."
	reasonBadGateway = "Stats service is unavailable."
	reasonInternal   = "Internal server error."
)

// ApiError is the body of every error response.
type ApiError struct {
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func writeError(c *gin.Context, code int, status, reason, message string) {
	c.AbortWithStatusJSON(code, ApiError{
		Status:    status,
		Reason:    reason,
		Message:   message,
		Timestamp: model.FormatDateTime(time.Now().UTC()),
	})
}

func badRequest(c *gin.Context, message string) {
	handleError(c, apperrors.Validation("%s", message), "Bind")
}

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		badRequest(c, bindingMessage(err))
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		badRequest(c, bindingMessage(err))
		return err
	}
	return nil
}

// BindPage reads from/size, rejecting from < 0 and size < 1.
func BindPage(c *gin.Context) (model.PageRequest, bool) {
	var page model.PageRequest
	if err := BindQuery(c, &page); err != nil {
		return page, false
	}
	return page, true
}

// ParamID reads a positive int64 path parameter.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, fmt.Sprintf("Field: %s. Error: must be a positive number. Value: %s", name, c.Param(name)))
		return 0, false
	}
	return id, true
}

// QueryID reads a required positive int64 query parameter.
func QueryID(c *gin.Context, name string) (int64, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		badRequest(c, fmt.Sprintf("Required request parameter '%s' is not present", name))
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, fmt.Sprintf("Field: %s. Error: must be a positive number. Value: %s", name, raw))
		return 0, false
	}
	return id, true
}

// RequiredQuery reads a non-blank query parameter.
func RequiredQuery(c *gin.Context, name string) (string, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		badRequest(c, fmt.Sprintf("Required request parameter '%s' is not present", name))
		return "", false
	}
	return raw, true
}

func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	var b strings.Builder
	for _, fe := range verrs {
		fmt.Fprintf(&b, "Field: %s. Error: %s. Value: %v. ", fe.Field(), failedRule(fe), fieldValue(fe.Value()))
	}
	return strings.TrimSpace(b.String())
}

// fieldValue renders dates in the API layout instead of as raw structs.
func fieldValue(v interface{}) interface{} {
	switch d := v.(type) {
	case model.DateTime:
		return model.FormatDateTime(d.Time())
	case *model.DateTime:
		if d == nil {
			return nil
		}
		return model.FormatDateTime(d.Time())
	}
	return v
}

func failedRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "eventdate":
		return "must be at least 2 hours in the future"
	case "future":
		return "must be in the future"
	case "email":
		return "must be a well-formed email address"
	case "min", "max", "gt":
		return fmt.Sprintf("must satisfy %s=%s", fe.Tag(), fe.Param())
	}
	return "failed on " + fe.Tag()
}

// handleError maps an error kind to its status and logs it under operation.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	message := apperrors.Message(err)

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		log.Info("Not found")
		writeError(c, http.StatusNotFound, "NOT_FOUND", reasonNotFound, message)
	case errors.Is(err, apperrors.ErrIllegalAction):
		log.Info("Illegal action")
		writeError(c, http.StatusConflict, "FORBIDDEN", reasonForbidden, message)
	case errors.Is(err, apperrors.ErrConflict):
		log.Warn("Integrity violation")
		writeError(c, http.StatusConflict, "CONFLICT", reasonConflict, message)
	case errors.Is(err, apperrors.ErrInvalidRange), errors.Is(err, apperrors.ErrValidation):
		log.Info("Bad request")
		writeError(c, http.StatusBadRequest, "BAD_REQUEST", reasonBadRequest, message)
	case errors.Is(err, apperrors.ErrStatsUnavailable):
		log.Error("Stats service unavailable")
		writeError(c, http.StatusBadGateway, "BAD_GATEWAY", reasonBadGateway, message)
	default:
		log.Error("Internal server error")
		writeError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", reasonInternal, "Internal server error")
	}
}
