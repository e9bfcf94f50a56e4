package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Dog errors
	ErrMsgDogNotFound = "dog not found"
	ErrMsgDogDeparted = "dog has already been retrieved"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgUpgradeOwned      = "upgrade already owned"
	ErrMsgUnknownUpgrade    = "unknown upgrade"

	// Interaction errors
	ErrMsgUnknownAction = "unknown action"

	// Hiring errors
	ErrMsgCandidateNotFound = "hiring candidate not found"

	// Persistence errors
	ErrMsgNoSavedSession = "no saved session"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrDogNotFound = errors.New(ErrMsgDogNotFound)
	ErrDogDeparted = errors.New(ErrMsgDogDeparted)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrUpgradeOwned      = errors.New(ErrMsgUpgradeOwned)
	ErrUnknownUpgrade    = errors.New(ErrMsgUnknownUpgrade)

	ErrUnknownAction = errors.New(ErrMsgUnknownAction)

	ErrCandidateNotFound = errors.New(ErrMsgCandidateNotFound)

	ErrNoSavedSession = errors.New(ErrMsgNoSavedSession)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
