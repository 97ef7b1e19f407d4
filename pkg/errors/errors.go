package errors

// Error message constants for the js-imports-lint application
const (
	// File processing errors
	ErrMsgFailedToReadFile  = "failed to read file"
	ErrMsgFailedToParseFile = "failed to parse file"
	ErrMsgFailedToWriteFile = "failed to write file"
	ErrMsgFixDidNotConverge = "fixes did not converge"

	// Configuration errors
	ErrMsgFailedToReadConfig  = "failed to read config file"
	ErrMsgFailedToParseConfig = "failed to parse config file"

	// Directory processing errors
	ErrMsgFailedToCheckPath       = "failed to check path"
	ErrMsgFailedToFindSourceFiles = "failed to find source files in directory"
	ErrMsgFilesFailedToProcess    = "%d files failed to process"
	ErrMsgProblemsFound           = "%d problems found"

	// Info/warning messages
	InfoMsgNoSourceFilesFound   = "No JavaScript or TypeScript files found in directory: %s"
	InfoMsgFixedFile            = "Fixed: %s"
	InfoMsgErrorProcessing      = "Error processing %s: %v"
	InfoMsgCheckedCount         = "\nChecked %d files"
	InfoMsgProblemCount         = ", %d problems"
	InfoMsgCurrentProjectOutput = "current project: "
)
