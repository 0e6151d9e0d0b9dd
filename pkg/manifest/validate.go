package manifest

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// jsQuotedTag marks strings that are emitted inside plain double quotes
// without escaping.
const jsQuotedTag = "jsquoted"

var configValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(jsQuotedTag, func(fl validator.FieldLevel) bool {
		return IsPlainQuotable(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsPlainQuotable reports whether value can be wrapped in double quotes as a
// JavaScript string literal without escaping.
func IsPlainQuotable(value string) bool {
	return !strings.ContainsAny(value, "\"\\\n\r\u2028\u2029")
}

func validateConfig(cfg Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	first := verrs[0]
	return &ConfigError{
		Field:  fieldPath(first.Namespace()),
		Reason: reasonFor(first.Tag()),
	}
}

// fieldPath converts a validator namespace such as "Config.cache.static[1]"
// into the manifest path "serviceWorker.cache.static[1]".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	return settingPath(namespace)
}

func reasonFor(tag string) string {
	switch tag {
	case "required":
		return "must not be empty"
	case jsQuotedTag:
		return "must not contain double quotes, backslashes or line breaks"
	default:
		return "failed " + tag + " validation"
	}
}
