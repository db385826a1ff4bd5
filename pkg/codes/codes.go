// Package codes is the face authentication status vocabulary shared by the
// sensor driver, the framework service and client callbacks.
//
// Two independent namespaces are defined: ErrorCode for terminal or retryable
// operation failures and AcquisitionCode for advisory capture feedback. The
// numeric values are a wire contract. They are append-only and are never
// renumbered; values at or above VendorBase belong to hardware vendors.
package codes

import (
	"errors"
	"fmt"
)

// VendorBase is the first value of the vendor extension range in both namespaces.
const VendorBase = 1000

// ErrUnknownCode reports a value that is neither core-defined nor in the vendor
// range, usually a version mismatch between producer and consumer.
var ErrUnknownCode = errors.New("unknown status code")

// Namespace identifies which enumeration a code belongs to.
type Namespace string

const (
	NamespaceError       Namespace = "error"
	NamespaceAcquisition Namespace = "acquisition"
)

// UnknownCodeError carries the offending value. It unwraps to ErrUnknownCode.
type UnknownCodeError struct {
	Namespace Namespace
	Code      int32
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %d", e.Namespace, e.Code)
}

func (e *UnknownCodeError) Unwrap() error { return ErrUnknownCode }

// Class is the handling category of a code.
type Class int

const (
	// ClassUnknown is neither core-defined nor vendor; log and fall back.
	ClassUnknown Class = iota
	// ClassCore has a stable documented meaning.
	ClassCore
	// ClassVendor is reserved but opaque to the registry.
	ClassVendor
)

func (c Class) String() string {
	switch c {
	case ClassCore:
		return "core"
	case ClassVendor:
		return "vendor"
	default:
		return "unknown"
	}
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	switch string(text) {
	case "core":
		*c = ClassCore
	case "vendor":
		*c = ClassVendor
	case "unknown":
		*c = ClassUnknown
	default:
		return fmt.Errorf("invalid code class %q", text)
	}
	return nil
}

// Entry describes one core-defined code.
type Entry[T ~int32] struct {
	Code    T
	Symbol  string
	Message string
	// Internal marks codes that are not part of the public client API.
	Internal bool
}

// IsVendorError reports whether code lies in the vendor range. It applies to
// either namespace independently.
func IsVendorError(code int32) bool {
	return code >= VendorBase
}
