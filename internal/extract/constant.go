package extract

// PlaceholderText replaces the summary of any attachment whose extraction
// failed. The request continues with the remaining attachments.
const PlaceholderText = "[attachment could not be processed]"

// MaxGenericBytes caps how much of a generic attachment is inlined.
const MaxGenericBytes = 8 * 1024

// CSV summary limits.
const (
	MaxCSVPreviewRows = 5
)

// Log prefixes
const (
	LogPrefixSummarize = "internal.extract.Summarize"
)
