package delivery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/x-xyz/staking/domain"
	"github.com/x-xyz/staking/service/query"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.Errorf(domain.ErrAuthorization, "missing authority of alice"), http.StatusUnauthorized},
		{domain.Errorf(domain.ErrNotFound, "no stake"), http.StatusNotFound},
		{query.ErrNotFound, http.StatusNotFound},
		{domain.Errorf(domain.ErrValidation, "bad symbol"), http.StatusBadRequest},
		{domain.Errorf(domain.ErrPrecondition, "locked"), http.StatusPreconditionFailed},
		{domain.Errorf(domain.ErrConflict, "exists"), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.status, StatusOf(tt.err), tt.err.Error())
	}
}

func TestMakeErrResp(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	assert.NoError(t, MakeErrResp(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), domain.Errorf(domain.ErrPrecondition, "you can unstake in 1 hours and 0 minutes")))
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
	assert.JSONEq(t, `{"data":"you can unstake in 1 hours and 0 minutes","status":"fail"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	assert.NoError(t, MakeErrResp(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), errors.New("mongo: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"data":"Internal Server Error","status":"fail"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	assert.NoError(t, MakeJsonResp(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), http.StatusOK, map[string]int{"n": 1}))
	assert.JSONEq(t, `{"data":{"n":1},"status":"success"}`, rec.Body.String())
}
