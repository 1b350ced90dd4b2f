package ports

type WorldMetrics interface {
	RecordTransition(fresh bool)
	RecordFreshSpawns(count int)
	RecordRestoredSpawns(count int)
	RecordDegradedPlacement()
	RecordSkippedSnapshot()
}
