package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"

	apperrors "marketplace/internal/errors"
)

// bindAndValidate decodes the body into dst and runs its validate tags.
func bindAndValidate(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return bindError(err)
	}
	if err := c.Validate(dst); err != nil {
		return fail(err)
	}
	return nil
}

// bindError reports type mismatches the same way as validation failures.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		parts := strings.Split(typeErr.Field, ".")
		field := parts[len(parts)-1]
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s must be a `%s` type", field, typeName(typeErr.Type)))
	}
	return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// fail turns a service error into an echo error carrying {"message": ...}.
func fail(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	he := echo.NewHTTPError(httpErr.StatusCode, httpErr.Message)
	if httpErr.StatusCode == http.StatusInternalServerError {
		he = he.SetInternal(err)
	}
	return he
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryInt reads a non-negative integer query parameter; anything else reads as 0.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseIDList decodes a JSON array of ids such as [1,2,3].
func parseIDList(raw string) ([]uint, error) {
	if !gjson.Valid(raw) {
		return nil, apperrors.NewValidationError("bulk must be a JSON array of ids")
	}
	root := gjson.Parse(raw)
	if !root.IsArray() {
		return nil, apperrors.NewValidationError("bulk must be a JSON array of ids")
	}
	ids := make([]uint, 0)
	for _, item := range root.Array() {
		if item.Type != gjson.Number || item.Num < 1 || item.Num != float64(item.Uint()) {
			return nil, apperrors.NewValidationError("bulk must be a JSON array of ids")
		}
		ids = append(ids, uint(item.Uint()))
	}
	return ids, nil
}
