package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Monthly Selection Worker
// ============================================================================

// Log messages for monthly top contributor selection
const (
	LogMsgMonthlySelectionStandby   = "Monthly selection in standby"
	LogMsgMonthlySelectionApproach  = "Monthly selection scheduled"
	LogMsgMonthlySelectionStarting  = "Monthly selection starting"
	LogMsgMonthlySelectionCompleted = "Monthly selection completed"
	LogMsgMonthlySelectionFailed    = "Monthly selection failed"
)

// ============================================================================
// Log Messages - Artifact Reconcile Job
// ============================================================================

// Log messages for the scheduled artifact rebuild
const (
	LogMsgArtifactReconcileStarting  = "Artifact reconciliation starting"
	LogMsgArtifactReconcileCompleted = "Artifact reconciliation completed"
)

// Error formats for the scheduled artifact rebuild
const (
	ErrFmtReconcileLoad    = "failed to load contributor records for reconciliation: %w"
	ErrFmtReconcileRebuild = "failed to rebuild display artifacts: %w"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
