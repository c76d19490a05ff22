package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents one configuration validation failure.
type ValidationError struct {
	Field   string
	Tag     string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s failed validation", e.Field)
}

// ValidationErrors aggregates every validation failure in a file, so a
// user can fix them all in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// Validator checks experiment configurations.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a configuration validator with the custom rules
// registered.
func NewValidator() (*Validator, error) {
	validate := validator.New()

	if err := registerAllValidators(validate); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	return &Validator{validate: validate}, nil
}

// ValidateConfig validates a configuration struct.
func (v *Validator) ValidateConfig(config *Config) error {
	if config == nil {
		return ValidationErrors{
			ValidationError{
				Field:   "config",
				Tag:     "required",
				Message: "config is nil",
			},
		}
	}

	var validationErrors ValidationErrors

	if err := v.validate.Struct(config); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, e := range errs {
				validationErrors = append(validationErrors, ValidationError{
					Field:   e.Field(),
					Tag:     e.Tag(),
					Value:   e.Value(),
					Message: getValidationMessage(e),
				})
			}
		} else {
			validationErrors = append(validationErrors, ValidationError{
				Message: err.Error(),
			})
		}
	}

	validationErrors = append(validationErrors, v.validateProblemRules(&config.Problem)...)

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

// validateProblemRules checks the cross-field requirements of each problem.
func (v *Validator) validateProblemRules(problem *ProblemConfig) ValidationErrors {
	var errors ValidationErrors

	switch problem.Name {
	case "onemax":
		if problem.Length < 1 {
			errors = append(errors, ValidationError{
				Field:   "Problem.Length",
				Tag:     "required",
				Value:   problem.Length,
				Message: "onemax requires a positive length",
			})
		}
	case "phrase":
		if problem.Target == "" {
			errors = append(errors, ValidationError{
				Field:   "Problem.Target",
				Tag:     "required",
				Message: "phrase requires a target",
			})
		}
	}

	return errors
}

// getValidationMessage builds a readable message for a validator failure.
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "even":
		return fmt.Sprintf("%s must be an even number", e.Field())
	case "problem_name":
		return fmt.Sprintf("%s must be one of onemax, phrase, introns", e.Field())
	case "log_level":
		return fmt.Sprintf("%s must be one of DEBUG, INFO, WARN, ERROR, FATAL", e.Field())
	default:
		return fmt.Sprintf("%s failed validation", e.Field())
	}
}

// registerAllValidators registers all custom validators.
func registerAllValidators(validate *validator.Validate) error {
	validators := map[string]validator.Func{
		"even":         validateEven,
		"problem_name": validateProblemName,
		"log_level":    validateLogLevel,
	}

	for name, fn := range validators {
		if err := validate.RegisterValidation(name, fn); err != nil {
			return fmt.Errorf("failed to register validator '%s': %w", name, err)
		}
	}

	return nil
}

// validateEven accepts even integers.
func validateEven(fl validator.FieldLevel) bool {
	return fl.Field().Int()%2 == 0
}

// validateProblemName accepts the built-in problem names.
func validateProblemName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	for _, valid := range []string{"onemax", "phrase", "introns"} {
		if name == valid {
			return true
		}
	}
	return false
}

// validateLogLevel accepts the known severities, ignoring case.
func validateLogLevel(fl validator.FieldLevel) bool {
	level := strings.ToUpper(fl.Field().String())
	for _, valid := range []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"} {
		if level == valid {
			return true
		}
	}
	return false
}

// Global validator instance.
var (
	globalValidator *Validator
	validatorOnce   sync.Once
)

// GetValidator returns the global validator instance.
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		var err error
		globalValidator, err = NewValidator()
		if err != nil {
			panic(fmt.Sprintf("failed to create global validator: %v", err))
		}
	})
	return globalValidator
}

// Validate validates the configuration using the singleton validator.
func (c *Config) Validate() error {
	return GetValidator().ValidateConfig(c)
}
