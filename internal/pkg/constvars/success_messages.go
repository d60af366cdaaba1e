package constvars

const (
	SessionCreatedSuccess   = "Provider connection registered successfully"
	SessionGetSuccess       = "Provider connection fetched successfully"
	SessionListSuccess      = "Provider connections fetched successfully"
	MigrationFinishedSuccess = "Migration attempt finished"
	RecordListSuccess        = "Clinical records fetched successfully"
	CareGapsGetSuccess       = "Care gaps evaluated successfully"
)
