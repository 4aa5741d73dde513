// Package nexus loads typed configuration from the environment and an
// optional .env style file.
package nexus

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Error codes carried by ConfigError
const (
	ErrCodeInvalidType = "CONFIG_INVALID_TYPE"
	ErrCodeFileRead    = "CONFIG_FILE_READ_FAILED"
	ErrCodeEnvironment = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge       = "CONFIG_MERGE_FAILED"
	ErrCodeValidation  = "CONFIG_VALIDATION_FAILED"
	ErrCodeWeakSecret  = "CONFIG_WEAK_SECRET"
)

// ConfigError describes why a configuration could not be loaded
type ConfigError struct {
	Code    string
	Message string
	Field   string
	Cause   error
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field: %s)", e.Field)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Validatable is implemented by configs that check cross-field rules
// after tag validation has passed.
type Validatable interface {
	Validate() error
}

// Loader reads a config struct using cleanenv tags
type Loader struct {
	fileName    string
	onlyEnv     bool
	validate    *validator.Validate
	weakSecrets []string
}

// Option configures a Loader
type Option func(*Loader)

// WithFileName reads the given file in addition to the environment.
// A missing file is an error.
func WithFileName(name string) Option {
	return func(l *Loader) {
		l.fileName = name
	}
}

// WithOnlyEnvironment ignores any config file
func WithOnlyEnvironment() Option {
	return func(l *Loader) {
		l.onlyEnv = true
		l.fileName = ""
	}
}

// WithWeakSecrets replaces the values rejected in fields tagged secret:"true"
func WithWeakSecrets(values ...string) Option {
	return func(l *Loader) {
		l.weakSecrets = values
	}
}

// DefaultFileName is read when present and no file was named
const DefaultFileName = ".env"

// NewLoader creates a loader with the given options
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		validate:    validator.New(),
		weakSecrets: []string{"changeme", "password", "secret", "admin"},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load populates cfg, then runs tag validation, the weak secret check
// and finally cfg.Validate when cfg implements Validatable.
func (l *Loader) Load(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{Code: ErrCodeEnvironment, Message: "failed to read environment variables", Cause: err}
	}

	if name := l.resolveFileName(); name != "" {
		if err := l.loadFile(cfg, name); err != nil {
			return err
		}
	}

	if err := l.checkSecrets(v.Elem(), ""); err != nil {
		return err
	}

	if err := l.validate.Struct(cfg); err != nil {
		return &ConfigError{Code: ErrCodeValidation, Message: "configuration validation failed", Cause: err}
	}

	if c, ok := cfg.(Validatable); ok {
		if err := c.Validate(); err != nil {
			return &ConfigError{Code: ErrCodeValidation, Message: "configuration validation failed", Cause: err}
		}
	}

	return nil
}

func (l *Loader) resolveFileName() string {
	if l.onlyEnv {
		return ""
	}
	if l.fileName != "" {
		return l.fileName
	}
	if _, err := os.Stat(DefaultFileName); err == nil {
		return DefaultFileName
	}
	return ""
}

// loadFile reads name into a fresh copy and merges its non-zero values.
// cleanenv still lets the environment win over the file.
func (l *Loader) loadFile(cfg interface{}, name string) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(name, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeFileRead,
			Message: fmt.Sprintf("failed to read configuration file %s", name),
			Cause:   err,
		}
	}

	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return &ConfigError{Code: ErrCodeMerge, Message: "failed to merge configuration sources", Cause: err}
	}
	return nil
}

func (l *Loader) checkSecrets(v reflect.Value, prefix string) error {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := prefix + field.Name

		switch fv := v.Field(i); fv.Kind() {
		case reflect.Struct:
			if err := l.checkSecrets(fv, name+"."); err != nil {
				return err
			}
		case reflect.String:
			if field.Tag.Get("secret") == "true" && l.isWeak(fv.String()) {
				return &ConfigError{
					Code:    ErrCodeWeakSecret,
					Message: "secret uses a well known placeholder value",
					Field:   name,
				}
			}
		}
	}
	return nil
}

func (l *Loader) isWeak(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	for _, weak := range l.weakSecrets {
		if lower == weak {
			return true
		}
	}
	return false
}

// IsConfigError reports whether err is a ConfigError with the given code
func IsConfigError(err error, code string) bool {
	var ce *ConfigError
	return errors.As(err, &ce) && ce.Code == code
}
