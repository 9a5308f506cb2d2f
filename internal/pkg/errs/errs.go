package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrConflict          = errors.New("object already exists")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnavailable       = errors.New("no eligible resource")
	ErrIntegrityFault    = errors.New("integrity fault")
)

// ObjectNotFoundError reports a missing package, order, user or referenced resource.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside of [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ObjectAlreadyExistsError reports a uniqueness violation raised by storage.
type ObjectAlreadyExistsError struct {
	ParamName string
	Key       any
	Cause     error
}

func NewObjectAlreadyExistsError(paramName string, key any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Key:       key,
	}
}

func NewObjectAlreadyExistsErrorWithCause(paramName string, key any, cause error) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{
		ParamName: paramName,
		Key:       key,
		Cause:     cause,
	}
}

func (e *ObjectAlreadyExistsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %v (cause: %v)", ErrConflict, e.ParamName, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s: %s %v", ErrConflict, e.ParamName, e.Key)
}

func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrConflict
}

// NoEligibleResourceError is returned by a selector draw whose pool is empty
// once exclusions are applied. The parent object exists; the pool does not.
type NoEligibleResourceError struct {
	Resource string
}

func NewNoEligibleResourceError(resource string) *NoEligibleResourceError {
	return &NoEligibleResourceError{Resource: resource}
}

func (e *NoEligibleResourceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnavailable, e.Resource)
}

func (e *NoEligibleResourceError) Unwrap() error {
	return ErrUnavailable
}

// IntegrityFaultError describes a foreign key that points at a missing row.
type IntegrityFaultError struct {
	Owner      string
	OwnerID    any
	Attachment string
	ID         any
}

func NewIntegrityFaultError(owner string, ownerID any, attachment string, id any) *IntegrityFaultError {
	return &IntegrityFaultError{
		Owner:      owner,
		OwnerID:    ownerID,
		Attachment: attachment,
		ID:         id,
	}
}

func (e *IntegrityFaultError) Error() string {
	return fmt.Sprintf("%s: %s %v references missing %s %v",
		ErrIntegrityFault, e.Owner, e.OwnerID, e.Attachment, e.ID)
}

func (e *IntegrityFaultError) Unwrap() error {
	return ErrIntegrityFault
}

func sanitize(v any) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(fmt.Sprint(v))
}
