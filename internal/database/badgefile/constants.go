package badgefile

// ==================== Error Messages ====================

const (
	ErrMsgCreateDirFailed    = "failed to create badges directory: %w"
	ErrMsgReadRecordFailed   = "failed to read record for '%s': %w"
	ErrMsgParseRecordFailed  = "failed to parse record for '%s': %w"
	ErrMsgEncodeRecordFailed = "failed to encode record for '%s': %w"
	ErrMsgWriteRecordFailed  = "failed to write record for '%s': %w"
	ErrMsgListRecordsFailed  = "failed to list badge records: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgSkippedRecord = "Skipping unreadable contributor record"
)
