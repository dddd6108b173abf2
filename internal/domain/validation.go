package domain

import "fmt"

// ValidationKind classifies a field validation failure.
type ValidationKind string

const (
	NullField  ValidationKind = "NULL_FIELD"
	EmptyField ValidationKind = "EMPTY_FIELD"
	TooLong    ValidationKind = "TOO_LONG"
)

// ValidationError reports a malformed title or contents value.
// Entities can only be constructed through the validating factories below,
// so a persisted entity never carries an invalid field.
type ValidationError struct {
	Kind  ValidationKind
	Field string
	Limit int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case NullField:
		return fmt.Sprintf("%s must not be null", e.Field)
	case EmptyField:
		return fmt.Sprintf("%s must not be empty", e.Field)
	case TooLong:
		return fmt.Sprintf("%s exceeds maximum length %d", e.Field, e.Limit)
	}
	return fmt.Sprintf("%s is invalid", e.Field)
}

// Maximum lengths carried over from the board schema.
const (
	MaxTitleLength    = 100
	MaxContentsLength = 10000
)

// ValidateTitle checks a title value. A nil pointer means the field was
// absent from the request, which is distinct from an empty string.
func ValidateTitle(field string, title *string) (string, error) {
	return validateText(field, title, MaxTitleLength)
}

// ValidateContents checks a body value with the contents length limit.
func ValidateContents(field string, contents *string) (string, error) {
	return validateText(field, contents, MaxContentsLength)
}

func validateText(field string, value *string, limit int) (string, error) {
	if value == nil {
		return "", &ValidationError{Kind: NullField, Field: field}
	}
	if *value == "" {
		return "", &ValidationError{Kind: EmptyField, Field: field}
	}
	if len([]rune(*value)) > limit {
		return "", &ValidationError{Kind: TooLong, Field: field, Limit: limit}
	}
	return *value, nil
}
