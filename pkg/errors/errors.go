package errors

// Error message constants for the sort-imports application
const (
	// Path processing errors
	ErrMsgFailedToCheckPath = "failed to check path"
	ErrMsgFailedToFindUnits = "failed to find unit files in directory"
	ErrMsgUnitsFailedToLint = "%d units failed to lint"

	// Configuration errors
	ErrMsgFailedToLoadConfig = "failed to load config file"

	// Reporting messages
	ErrMsgProblemsFound = "%d problems found"
)
