package helper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"estate-cms/models"
)

var (
	validationOnce sync.Once
	validate       *validator.Validate
	translator     ut.Translator
)

// Validation returns gin's validator with the English translations and the
// "enum" tag registered. Registration happens once per process.
func Validation() (*validator.Validate, ut.Translator) {
	validationOnce.Do(func() {
		english := en.New()
		uni := ut.New(english, english)
		translator, _ = uni.GetTranslator("en")

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
		}
		v.RegisterTagNameFunc(fieldName)
		_ = en_translations.RegisterDefaultTranslations(v, translator)
		_ = v.RegisterValidation("enum", validateEnum)
		_ = v.RegisterTranslation("enum", translator,
			func(ut ut.Translator) error {
				return ut.Add("enum", "{0} has a value outside the allowed set", true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T("enum", fe.Field())
				return t
			},
		)
		validate = v
	})
	return validate, translator
}

// validateEnum accepts fields whose type reports its own validity.
func validateEnum(fl validator.FieldLevel) bool {
	enum, ok := fl.Field().Interface().(models.Enum)
	if !ok {
		return false
	}
	return enum.Valid()
}

// fieldName reports fields by their json name, or form name for form-only
// structs.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			continue
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
