package validator

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/stemsi/arabic-learning-backend/internal/response"
)

var (
	// trans is the singleton English translator for validation errors.
	trans     ut.Translator
	setupOnce sync.Once
)

// Setup registers JSON field names and English translations on Gin's
// binding engine. Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)
	})
}

// TranslateErrors maps a validation error to field name → message. Other
// errors come back under a single "detail" key.
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	fields["detail"] = err.Error()
	return fields
}

// BindJSON reads and validates the request body into dst.
//   - empty body: 400 "Request body is required", checked before any parsing
//   - malformed JSON or wrong types: 400 "Invalid JSON body"
//   - failed binding rules: 400 with missingMsg and per-field messages
func BindJSON(c *gin.Context, dst interface{}, missingMsg string) error {
	Setup()

	body, err := RequireBody(c)
	if err != nil {
		return err
	}

	if err := binding.JSON.BindBody(body, dst); err != nil {
		var ve govalidator.ValidationErrors
		if errors.As(err, &ve) {
			return response.Validation(missingMsg, TranslateErrors(err))
		}
		return response.Validation(response.MsgInvalidJSON, TranslateErrors(err))
	}
	return nil
}

// RequireBody reads the whole request body. A body that is missing or only
// whitespace fails with 400 "Request body is required".
func RequireBody(c *gin.Context) ([]byte, error) {
	if c.Request.Body == nil {
		return nil, response.BadRequest(response.MsgBodyRequired)
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		return nil, response.BadRequest(response.MsgBodyRequired)
	}
	return body, nil
}
