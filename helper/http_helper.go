package helper

import (
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

func NewHTTPHelper() (*HTTPHelper, error) {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	v := validator.New()
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	return &HTTPHelper{Validate: v, Translator: trans}, nil
}

func (u *HTTPHelper) getTypeData(i interface{}) string {
	v := reflect.ValueOf(i)
	v = reflect.Indirect(v)

	return v.Type().String()
}

// GetStatusCode maps a typed domain error to its HTTP status.
func (u *HTTPHelper) GetStatusCode(err error) int {
	statusCode := http.StatusOK
	if err != nil {
		switch u.getTypeData(err) {
		case "models.ErrorUnauthorized":
			statusCode = http.StatusUnauthorized
		case "models.ErrorNotFound":
			statusCode = http.StatusNotFound
		case "models.ErrorConflict":
			statusCode = http.StatusConflict
		case "models.ErrorValidation":
			statusCode = http.StatusBadRequest
		default:
			statusCode = http.StatusInternalServerError
		}
	}

	return statusCode
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	c.JSON(u.GetStatusCode(err), gin.H{"error": err.Error()})
}

// ValidateStruct runs the translated field-level validation and writes the
// 400 response itself when something fails.
func (u *HTTPHelper) ValidateStruct(c *gin.Context, s interface{}) bool {
	err := u.Validate.Struct(s)
	if err == nil {
		return true
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}

	u.SendValidationError(c, validationErrors)
	return false
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": errorResponse})
}

// Underscore converts a CamelCase field name to snake_case.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
