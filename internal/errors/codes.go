package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidMonth  ErrorCode = "VALIDATION_006"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound             ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount        ErrorCode = "EXPENSE_002"
	ExpenseInvalidCategory      ErrorCode = "EXPENSE_003"
	ExpenseInvalidID            ErrorCode = "EXPENSE_004"
	ExpenseConfirmationRequired ErrorCode = "EXPENSE_005"
)

// Budget and income error codes (BUDGET_*)
const (
	BudgetInvalidAmount ErrorCode = "BUDGET_001"
	BudgetUnknownCode   ErrorCode = "BUDGET_002"
	IncomeInvalidAmount ErrorCode = "BUDGET_003"
)

// Report error codes (REPORT_*)
const (
	ReportGenerationFailed ErrorCode = "REPORT_001"
)

// Offline cache error codes (CACHE_*)
const (
	CacheNotReady      ErrorCode = "CACHE_001"
	CacheInstallFailed ErrorCode = "CACHE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date, expected YYYY-MM-DD",
	ValidationInvalidMonth:  "Invalid month, expected YYYY-MM",

	// Expense errors
	ExpenseNotFound:             "Expense not found",
	ExpenseInvalidAmount:        "Amount must be a positive number",
	ExpenseInvalidCategory:      "Unknown expense category",
	ExpenseInvalidID:            "Invalid expense ID format",
	ExpenseConfirmationRequired: "Deleting an expense requires confirmation",

	// Budget errors
	BudgetInvalidAmount: "Budget amounts must be zero or greater",
	BudgetUnknownCode:   "Budget refers to an unknown category",
	IncomeInvalidAmount: "Monthly income must be zero or greater",

	// Report errors
	ReportGenerationFailed: "Failed to generate the expense report",

	// Cache errors
	CacheNotReady:      "Offline cache is not ready",
	CacheInstallFailed: "Offline cache installation failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please report the trace ID",
	SystemDatabaseError:      "Storage error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
