package usecase

// Export unexported values for testing
var (
	FirstLineForTest          = firstLine
	VibeAnalysisSchemaForTest = vibeAnalysisSchema
)

const (
	MaxPromptFilesForTest       = maxPromptFiles
	MaxFileNameLengthForTest    = maxFileNameLength
	MaxToolConfigLengthForTest  = maxToolConfigLength
	MaxCommitLineLengthForTest  = maxCommitLineLength
	MaxAuthorNameLengthForTest  = maxAuthorNameLength
	MaxDescriptionLengthForTest = maxDescriptionLength
	MaxTopicsForTest            = maxTopics
	MaxTopicLengthForTest       = maxTopicLength
)
