// Package types contains common types shared across the urisplit packages.
package types

import (
	"io"
	"reflect"
)

// Renderer is implemented by values that can write their URI form to a writer.
type Renderer interface {
	// RenderTo writes the value to w and returns the number of bytes written.
	RenderTo(w io.Writer) (int, error)
	String() string
}

// Kind is the concrete representation of an input value.
type Kind uint8

const (
	// KindText is a string-like input.
	KindText Kind = iota
	// KindBytes is a byte-slice input.
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// KindOf returns the representation kind of the type parameter.
// Named string and byte-slice types are classified by their underlying type.
func KindOf[T ~string | ~[]byte]() Kind {
	if reflect.TypeFor[T]().Kind() == reflect.String {
		return KindText
	}
	return KindBytes
}

// Input is a text-or-bytes value normalized at an API boundary.
// Data holds the raw bytes of the value as a string, Kind remembers where it came from.
type Input struct {
	Data string
	Kind Kind
}

// InputOf normalizes s to an [Input].
func InputOf[T ~string | ~[]byte](s T) Input {
	return Input{Data: string(s), Kind: KindOf[T]()}
}

// Output converts s back to the representation of T.
func Output[T ~string | ~[]byte](s string) T { return T(s) }
