package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/service"
)

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestParseIDList(t *testing.T) {
	tests := []struct {
		raw     string
		want    []uint
		wantErr bool
	}{
		{raw: "[1,2,999]", want: []uint{1, 2, 999}},
		{raw: "[]", want: []uint{}},
		{raw: "[0]", wantErr: true},
		{raw: "[1.5]", wantErr: true},
		{raw: `["1"]`, wantErr: true},
		{raw: "{}", wantErr: true},
		{raw: "1,2", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			ids, err := parseIDList(tt.raw)
			if tt.wantErr {
				var ve *apperrors.ValidationError
				require.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"first missing field wins", `{}`, "first_name is a required field"},
		{"later missing field", `{"first_name":"A","email":"a@x.com"}`, "password is a required field"},
		{"string given a number", `{"first_name":1}`, "first_name must be a `string` type"},
		{"number given a string", `{"first_name":"A","user_type_id":"two"}`, "user_type_id must be a `number` type"},
		{"nested field", `{"first_name":"A","address":{"city":3}}`, "city must be a `string` type"},
		{"malformed body", `{"first_name":`, "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in service.CreateUserInput
			err := bindAndValidate(newContext(http.MethodPost, "/user", tt.body), &in)

			var he *echo.HTTPError
			require.True(t, errors.As(err, &he), "got %v", err)
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, tt.message, he.Message)
		})
	}

	var in service.CreateUserInput
	err := bindAndValidate(newContext(http.MethodPost, "/user", `{"first_name":"A","email":"a@x.com","password":"p"}`), &in)
	require.NoError(t, err)
	assert.Equal(t, "A", in.FirstName)
}

func TestValidator_NestedImage(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&service.CreateUserImageInput{Name: "n", Description: "d"})
	assert.EqualError(t, err, "image is a required field")

	err = v.Validate(&service.CreateUserImageInput{Name: "n", Description: "d", Image: &service.RequiredImageInput{}})
	assert.EqualError(t, err, "data is a required field")

	err = v.Validate(&service.CreateUserImageInput{Name: "n", Description: "d", Image: &service.RequiredImageInput{Data: "eA=="}})
	assert.NoError(t, err)
}

func TestFail(t *testing.T) {
	err := fail(apperrors.ErrStoreNotFound)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
	assert.Equal(t, "Loja não encontrada", he.Message)
	assert.Nil(t, he.Internal)

	cause := errors.New("connection refused")
	err = fail(cause)
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
	assert.Equal(t, "internal server error", he.Message)
	assert.Equal(t, cause, he.Internal)
}

func TestPathIDAndQueryInt(t *testing.T) {
	c := newContext(http.MethodGet, "/store?limit=5&offset=-1&bad=x", "")
	c.SetParamNames("id")

	c.SetParamValues("12")
	id, ok := pathID(c)
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)

	for _, raw := range []string{"0", "abc", "-3"} {
		c.SetParamValues(raw)
		_, ok = pathID(c)
		assert.False(t, ok, raw)
	}

	assert.Equal(t, 5, queryInt(c, "limit"))
	assert.Equal(t, 0, queryInt(c, "offset"))
	assert.Equal(t, 0, queryInt(c, "bad"))
	assert.Equal(t, 0, queryInt(c, "missing"))
}
