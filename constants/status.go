package constants

// FileStatus is the outcome of processing one source file.
type FileStatus string

// Stable values (stored as-is in the ledger).
const (
	FileStatusProcessed FileStatus = "PROCESSED" // copied and listed in the manifest
	FileStatusSkipped   FileStatus = "SKIPPED"   // no copy, no manifest row
)

// SkipReason says which stage a skipped file failed in.
type SkipReason string

const (
	ReasonNone          SkipReason = ""
	ReasonExtractFailed SkipReason = "EXTRACT_FAILED"
	ReasonLLMFailed     SkipReason = "LLM_FAILED"
	ReasonCopyFailed    SkipReason = "COPY_FAILED"
)
