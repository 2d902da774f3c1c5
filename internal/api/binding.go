package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FlexInt is an int that also accepts JSON string values like "3".
// Form inputs routinely send numbers as strings; coercing here keeps
// the handlers and validation tags working on plain integers.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("flexint: cannot parse %q as integer", data)
	}
	*f = FlexInt(n)
	return nil
}

func (f FlexInt) Int() int { return int(f) }

// IntPtr converts an optional FlexInt into the *int the services expect.
func (f *FlexInt) IntPtr() *int {
	if f == nil {
		return nil
	}
	n := int(*f)
	return &n
}

// bindJSON binds and validates the request body. On failure it writes
// the 400 response itself and returns false; field-level problems are
// reported under "details" keyed by field name.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[lowerFirst(fe.Field())] = validationMessage(fe)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": MsgInvalidData, "details": details})
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": MsgInvalidData, "details": gin.H{"body": "corps de requête illisible"}})
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "champ requis"
	case "min":
		return "doit être au moins " + fe.Param()
	case "max":
		return "doit être au plus " + fe.Param()
	case "email":
		return "adresse e-mail invalide"
	case "oneof":
		return "valeur non autorisée"
	case "url":
		return "URL invalide"
	default:
		return "valeur invalide"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
