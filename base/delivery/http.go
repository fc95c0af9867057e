package delivery

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// StatusOf maps an error to the http status its kind stands for
func StatusOf(err error) int {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, query.ErrNotFound) {
		return http.StatusNotFound
	}
	switch domain.KindOf(err) {
	case domain.ErrAuthorization:
		return http.StatusUnauthorized
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrValidation:
		return http.StatusBadRequest
	case domain.ErrPrecondition:
		return http.StatusPreconditionFailed
	case domain.ErrConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// MakeJsonResp writes data in the {data, status} envelope. An error as data picks its own status
// unless status is already a client error, and internal errors never leak their message.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if status == 0 || status >= http.StatusInternalServerError {
			status = StatusOf(err)
		}
		if status >= http.StatusInternalServerError {
			data = domain.ErrInternalServerError.Error()
		} else {
			data = err.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

// MakeErrResp writes err with the status its kind maps to
func MakeErrResp(c echo.Context, err error) error {
	return MakeJsonResp(c, 0, err)
}
