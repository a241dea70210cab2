package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"gopkg.in/yaml.v3"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	// Report fields by their configuration key, not their Go name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("typepattern", isTypePattern); err != nil {
		panic(err)
	}
}

// Config controls the target-language names produced by a Resolver.
type Config struct {
	// Namespace prefixes every qualified name, e.g. "Google::Apis".
	Namespace string `yaml:"namespace" schema:"namespace" validate:"required"`

	// Types maps schema kinds to target type expressions.
	Types TypeNames `yaml:"types" schema:"types"`
}

// TypeNames holds the target type name for each primitive kind, the two
// date formats, and the patterns used for collection types.
type TypeNames struct {
	String   string `yaml:"string" schema:"string" validate:"required"`
	Boolean  string `yaml:"boolean" schema:"boolean" validate:"required"`
	Number   string `yaml:"number" schema:"number" validate:"required"`
	Integer  string `yaml:"integer" schema:"integer" validate:"required"`
	Any      string `yaml:"any" schema:"any" validate:"required"`
	DateTime string `yaml:"date_time" schema:"date_time" validate:"required"`
	Date     string `yaml:"date" schema:"date" validate:"required"`

	// Array and Hash are patterns with exactly one "%s", replaced by the
	// element or value type: "Array<%s>", "Hash<String,%s>".
	Array string `yaml:"array" schema:"array" validate:"required,typepattern"`
	Hash  string `yaml:"hash" schema:"hash" validate:"required,typepattern"`
}

// DefaultConfig returns the Ruby client library conventions.
func DefaultConfig() Config {
	return Config{
		Namespace: "Google::Apis",
		Types: TypeNames{
			String:   "String",
			Boolean:  "Boolean",
			Number:   "Float",
			Integer:  "Fixnum",
			Any:      "Object",
			DateTime: "DateTime",
			Date:     "Date",
			Array:    "Array<%s>",
			Hash:     "Hash<String,%s>",
		},
	}
}

// LoadConfig decodes a YAML document over DefaultConfig. Keys absent from
// data keep their defaults; unknown keys are rejected. Empty input yields
// the defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("codegen: decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseParameters decodes a generator parameter string of comma-separated
// key=value pairs over DefaultConfig, for example:
//
//	namespace=Acme::Apis,types.integer=Integer,types.array=List<%s>
//
// Nested keys use dots. Values cannot contain commas; use LoadConfig for
// patterns such as "Hash<String,%s>". Later duplicates win.
func ParseParameters(param string) (Config, error) {
	values := url.Values{}
	for _, pair := range strings.Split(param, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return Config{}, fmt.Errorf("codegen: parameter %q is not key=value", pair)
		}
		values.Set(key, value)
	}

	cfg := DefaultConfig()
	if err := schemaDecoder.Decode(&cfg, values); err != nil {
		return Config{}, fmt.Errorf("codegen: decoding parameters: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every name is set and that the collection patterns
// are well formed.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("codegen: validating config: %w", err)
	}
	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, configKey(ve)+": "+formatValidationError(ve))
	}
	return fmt.Errorf("codegen: invalid config: %s", strings.Join(messages, "; "))
}

// configKey turns "Config.types.array" into "types.array".
func configKey(ve validator.FieldError) string {
	_, key, ok := strings.Cut(ve.Namespace(), ".")
	if !ok {
		return ve.Field()
	}
	return key
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "typepattern":
		return `must contain exactly one "%s" and no other verbs`
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

func isTypePattern(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return strings.Count(v, "%s") == 1 && strings.Count(v, "%") == 1
}
