package jobboard

import (
	"errors"
	"strings"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrJobInactive = errors.New("job is inactive")
	ErrDuplicate   = errors.New("duplicate application")
)

// FieldError 描述单个字段未通过的校验规则。
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError 汇总一次校验中所有未通过的规则，顺序与检查顺序一致。
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

// AsValidationError 在 err 链中查找 *ValidationError。
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

type fieldErrors []FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Errors: f}
}
