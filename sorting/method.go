package sorting

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPreferenceValue = errors.New("invalid preference value")
	ErrInvalidMethod          = fmt.Errorf("%w: unknown sort method", ErrInvalidPreferenceValue)
	ErrInvalidOrder           = fmt.Errorf("%w: unknown sort order", ErrInvalidPreferenceValue)
)

type Method byte

const (
	MethodAlphabetical Method = iota
	MethodCategory
	MethodQuantity
	MethodModNamespace
)

// Methods lists every method in cycling order.
var Methods = []Method{MethodAlphabetical, MethodCategory, MethodQuantity, MethodModNamespace}

var methodNames = map[Method]string{
	MethodAlphabetical: "alphabetical",
	MethodCategory:     "category",
	MethodQuantity:     "quantity",
	MethodModNamespace: "mod_id",
}

func (m Method) String() string {
	if n, ok := methodNames[m]; ok {
		return n
	}
	return fmt.Sprintf("method(%d)", byte(m))
}

func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

// Next returns the method after m, wrapping to the first.
func (m Method) Next() Method {
	return Methods[(int(m)+1)%len(Methods)]
}

// ParseMethod resolves a serialized method name, ignoring case.
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods {
		if strings.EqualFold(methodNames[m], name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w [%s]", ErrInvalidMethod, name)
}
