package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure so the transport can pick a status code without
// inspecting messages.
type Kind string

const (
	KindInvalidBody          Kind = "invalid_body"
	KindInvalidCharacterList Kind = "invalid_character_list"
	KindMissingCharacterName Kind = "missing_character_name"
	KindTooFewCharacters     Kind = "too_few_characters"

	KindNoGenerationOutput             Kind = "no_generation_output"
	KindMalformedGenerationOutput      Kind = "malformed_generation_output"
	KindGenerationCommunicationFailure Kind = "generation_communication_failure"
	// KindGenerationRefused is a model reply that carries a responsible-use
	// notice instead of chapters.
	KindGenerationRefused              Kind = "generation_refused"

	KindInternalFailure Kind = "internal_failure"
)

// IsClient reports whether the kind is caused by bad input.
func (k Kind) IsClient() bool {
	switch k {
	case KindInvalidBody, KindInvalidCharacterList, KindMissingCharacterName, KindTooFewCharacters:
		return true
	}
	return false
}

// IsGeneration reports whether the kind comes from the generation collaborator.
func (k Kind) IsGeneration() bool {
	switch k {
	case KindNoGenerationOutput, KindMalformedGenerationOutput, KindGenerationCommunicationFailure,
		KindGenerationRefused:
		return true
	}
	return false
}

// HTTPStatus maps a kind to its response status. Generation failures are
// answered with 200 and an error body; the frontend treats the response as
// content either way.
func (k Kind) HTTPStatus() int {
	switch {
	case k.IsClient():
		return http.StatusBadRequest
	case k.IsGeneration():
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// Error is the error type returned across the usecase boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an Error of the given kind around err.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternalFailure for anything that is
// not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternalFailure
}

// MessageOf returns the user facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
