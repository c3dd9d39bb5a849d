package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrDuplicateFundName indicates that a fund with the same name already exists.
	ErrDuplicateFundName = errors.New("a fund with this name already exists")

	// ErrNegativeNav indicates that a NAV field has an invalid negative value.
	ErrNegativeNav = errors.New("nav cannot be negative")

	// ErrEmptyName indicates that a required name field is empty or missing.
	ErrEmptyName = errors.New("name cannot be empty")
)

// Migration errors represent failures in the legacy-to-destination data migration.
var (
	// ErrStoreUnavailable indicates that the legacy source store cannot be opened.
	ErrStoreUnavailable = errors.New("legacy store unavailable")

	// ErrInvalidRecord indicates that a legacy record fails the destination
	// shape requirements and cannot be transformed.
	ErrInvalidRecord = errors.New("invalid legacy record")
)
