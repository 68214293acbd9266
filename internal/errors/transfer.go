package errors

var (
	// ErrSameAccount rejects transfers where source and destination are
	// the same account.
	ErrSameAccount = &DomainError{
		Code:    "SAME_ACCOUNT",
		Message: "source and destination accounts must differ",
	}
	// ErrInvalidDateRange covers both a transfer date before the
	// scheduling date and a day-distance above the configured limit.
	ErrInvalidDateRange = &DomainError{
		Code:    "INVALID_DATE_RANGE",
		Message: "transfer date is outside the allowed scheduling window",
	}
	// ErrNoApplicableTier means no fee tier covers the computed
	// day-distance. This is a tier-table configuration gap, not bad
	// user input, and is logged as such.
	ErrNoApplicableTier = &DomainError{
		Code:    "NO_APPLICABLE_TIER",
		Message: "no fee tier applies to the requested transfer date",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "amount must be positive",
	}
	ErrTransferNotFound = &DomainError{
		Code:    "TRANSFER_NOT_FOUND",
		Message: "scheduled transfer not found",
	}
	// ErrInvalidTierTable is raised at load time when the configured
	// tiers do not form a clean partition of the allowed day range.
	ErrInvalidTierTable = &DomainError{
		Code:    "INVALID_TIER_TABLE",
		Message: "fee tier table is not a valid partition of the day range",
	}
)
