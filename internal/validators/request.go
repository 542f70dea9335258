package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// TagUsername validates usernames: letters, digits and @/./+/-/_ only.
const TagUsername = "username"

var usernameRegexp = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// RequestValidator validates request structs by their `validate` tags.
type RequestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewRequestValidator constructs a [RequestValidator] with English messages
// and the custom rules of this package registered.
func NewRequestValidator() (*RequestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	translator, _ := ut.New(english, english).GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		return nil, fmt.Errorf("error registering translations: %w", err)
	}

	if err := validate.RegisterValidation(TagUsername, isUsername); err != nil {
		return nil, fmt.Errorf("error registering %s validation: %w", TagUsername, err)
	}
	err := validate.RegisterTranslation(TagUsername, translator,
		func(ut ut.Translator) error {
			return ut.Add(TagUsername, "{0} may contain only letters, digits and @/./+/-/_ characters", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(TagUsername, fe.Field())
			return t
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error registering %s translation: %w", TagUsername, err)
	}

	return &RequestValidator{validate: validate, translator: translator}, nil
}

func isUsername(fl validator.FieldLevel) bool {
	return usernameRegexp.MatchString(fl.Field().String())
}

// Validate checks obj, a struct or a pointer to one. When fields are given
// only those struct fields (Go names, e.g. "Username") are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fieldErrors := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Translate(v.translator)+".")
	}

	return fieldErrors
}
