package pure

import (
	"reflect"
)

// GetTypeName returns the name of v's type, looking through pointers.
// Unnamed types report their type literal, nil reports "".
func GetTypeName(v any) string {
	if v == nil {
		return ""
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// NamedError is an error carrying a name alongside its message.
type NamedError struct {
	Name    string
	Message string
}

func NewError(name, message string) *NamedError {
	return &NamedError{Name: name, Message: message}
}

func (e *NamedError) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}

// Is matches any *NamedError with the same Name.
func (e *NamedError) Is(target error) bool {
	t, ok := target.(*NamedError)
	return ok && t.Name == e.Name
}
