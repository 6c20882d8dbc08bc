package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/teampw/themestore/internal/domain/entity"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	storageBackends = map[string]struct{}{StorageSQLite: {}, StorageFile: {}, StorageMemory: {}}
)

// validatorInstance configures and returns the shared validator used by the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their config key instead of the Go field name.
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("theme_value", func(fl validator.FieldLevel) bool {
			_, ok := entity.ParseTheme(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("storage_backend", func(fl validator.FieldLevel) bool {
			_, ok := storageBackends[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is nil")
	}

	err := validatorInstance().Struct(config)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	validationErrors := make([]string, 0, len(ves))
	for _, fe := range ves {
		validationErrors = append(validationErrors, describeFieldError(fe))
	}
	return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
}

func describeFieldError(fe validator.FieldError) string {
	field := configKey(fe)
	switch fe.Tag() {
	case "theme_value":
		return fmt.Sprintf("%s must be light or dark (got: %v)", field, fe.Value())
	case "storage_backend":
		return fmt.Sprintf("%s must be one of: sqlite, file, memory (got: %v)", field, fe.Value())
	case "hexcolor":
		return fmt.Sprintf("%s must be a hex color like #RRGGBB (got: %v)", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got: %v)", field, fe.Param(), fe.Value())
	case "min", "max":
		return fmt.Sprintf("%s must be %s %s (got: %v)", field, boundWord(fe.Tag()), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}

// configKey turns "Config.appearance.default_theme" into "appearance.default_theme".
func configKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func boundWord(tag string) string {
	if tag == "min" {
		return ">="
	}
	return "<="
}
