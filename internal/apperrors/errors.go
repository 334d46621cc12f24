package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given fund ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrSavedFundNotFound indicates that the user has no saved fund with the given fund ID.
	ErrSavedFundNotFound = errors.New("saved fund not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrFundAlreadySaved indicates that the (user, fund) pair already exists on the
	// watchlist. It covers both the pre-check path and the store's unique-constraint
	// violation raised by a racing duplicate save.
	ErrFundAlreadySaved = errors.New("fund already saved")

	// ErrInvalidFundID indicates that a required fund ID is empty or missing.
	ErrInvalidFundID = errors.New("fund ID is required")

	// ErrInvalidUserID indicates that no authenticated user identity is available.
	ErrInvalidUserID = errors.New("user ID is required")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. They map to 500 responses with a generic message.
var (
	ErrFailedToRetrieveFunds      = errors.New("failed to retrieve funds")
	ErrFailedToRetrieveFund       = errors.New("failed to retrieve fund")
	ErrFailedToRetrieveMetadata   = errors.New("failed to retrieve fund metadata")
	ErrFailedToRetrieveSavedFunds = errors.New("failed to retrieve saved funds")
	ErrFailedToSaveFund           = errors.New("failed to save fund")
	ErrFailedToRemoveSavedFund    = errors.New("failed to remove saved fund")
)
