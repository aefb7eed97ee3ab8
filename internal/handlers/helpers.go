package handlers

import (
	"errors"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/logger"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is returned by endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseQueryID parses an optional uint query parameter. It returns nil when
// the parameter is absent.
func parseQueryID(c *gin.Context, param string) (*uint, error) {
	raw := c.Query(param)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	v := uint(id)
	return &v, nil
}

// optionalQuery returns a pointer to the query value, or nil when it is empty.
func optionalQuery(c *gin.Context, param string) *string {
	if v := c.Query(param); v != "" {
		return &v
	}
	return nil
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// toMinorUnits rounds a request amount half away from zero to integer minor
// units. Sign checks are left to the services; amounts that do not fit in an
// int64 are rejected rather than wrapped.
func toMinorUnits(amount decimal.Decimal) (int64, error) {
	rounded := amount.Round(0)
	if rounded.Abs().GreaterThan(maxMinorUnits) {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is out of range")
	}
	return rounded.IntPart(), nil
}

// bindError turns a binding failure into an INVALID_INPUT error.
func bindError(err error) *apperrors.AppError {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{
			Code:    appErr.Code,
			Message: appErr.Message,
		}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
