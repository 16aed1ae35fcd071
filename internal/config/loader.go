package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	identPattern     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	must(v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("namespace", func(fl validator.FieldLevel) bool {
		return namespacePattern.MatchString(fl.Field().String())
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Parse parses YAML data into a File, applies defaults and validates it.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config YAML")
	}

	applyDefaults(&f)

	if err := Validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// Default returns the configuration used when no file is given.
func Default() *File {
	var f File
	applyDefaults(&f)

	return &f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	if f.MaxDepth == 0 {
		f.MaxDepth = DefaultMaxDepth
	}

	if f.Namespaces == nil {
		f.Namespaces = make(map[string]string)
	}
}

// Validate checks f and reports every invalid field at once.
func Validate(f *File) error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return errors.Wrap(err, "validate config")
	}

	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Namespace()+": "+describeFailure(ve))
	}

	return errors.WithHint(
		errors.Newf("invalid config: %s", strings.Join(messages, "; ")),
		"see the example at the top of the config package documentation",
	)
}

func describeFailure(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "eq":
		return "must equal " + ve.Param()
	case "gte":
		return "must be at least " + ve.Param()
	case "goident":
		return "must be a Go identifier"
	case "namespace":
		return "must be a dotted namespace such as Acme.Fixtures"
	default:
		return "failed " + ve.Tag() + " validation"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}
