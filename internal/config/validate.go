package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	oerrors "github.com/skelkit/skel/internal/errors"
)

var validate *validator.Validate

// optionNameRegex matches answer keys usable in templates as {{ .name }}.
var optionNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("optionname", func(fl validator.FieldLevel) bool {
		return optionNameRegex.MatchString(fl.Field().String())
	})
}

// fieldMessages maps validation tags to friendly messages.
var fieldMessages = map[string]string{
	"optionname": "'%s' must be a template option name (letters, digits, underscores)",
	"oneof":      "'%s' must be one of %s",
}

// Validate checks cfg and returns a DetailError listing every failing field.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating config: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		msgs = append(msgs, parseMessage(e))
	}

	return oerrors.NewConfigError(
		strings.Join(msgs, "\n  "),
		"",
		fieldErrs[0].Namespace(),
		"Fix the config file or the matching SKEL_* environment variable",
		nil,
	)
}

func parseMessage(e validator.FieldError) string {
	value := fmt.Sprint(e.Value())
	msg, ok := fieldMessages[e.Tag()]
	if !ok {
		return fmt.Sprintf("%s is invalid: %s", e.Namespace(), e.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, value, e.Param())
	}
	return fmt.Sprintf(msg, value)
}
