package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

const dateLayout = "2006-01-02"

// bindErrorMessage turns a gin binding error into a client-facing message,
// listing the failing fields when the error comes from struct validation.
func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		parts := make([]string, 0, len(validationErrors))
		for _, ve := range validationErrors {
			parts = append(parts, fmt.Sprintf("%s failed on '%s'", ve.Field(), ve.Tag()))
		}
		return "Invalid request body: " + strings.Join(parts, ", ")
	}
	return "Invalid request body: " + err.Error()
}

// parseIDParam reads a numeric id from the given path parameter.
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// parseOptionalDate parses a YYYY-MM-DD query value; empty means unset.
// endOfDay pushes the time to the last instant of that day so that
// inclusive [start, end] ranges cover the whole end date.
func parseOptionalDate(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// parseDateRange binds the optional start/end query pair.
func parseDateRange(c *gin.Context) (start, end *time.Time, err error) {
	start, err = parseOptionalDate(c.Query("start"), false)
	if err != nil {
		return nil, nil, err
	}
	end, err = parseOptionalDate(c.Query("end"), true)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}
