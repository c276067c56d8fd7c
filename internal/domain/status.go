package domain

// StatusBucket is a completion-status category for a single task row.
type StatusBucket string

const (
	BucketCompleted      StatusBucket = "completed"
	BucketAlmostComplete StatusBucket = "almost_complete"
	BucketHalfDone       StatusBucket = "half_done"
	BucketWorkInProgress StatusBucket = "work_in_progress"

	// BucketUnclassified marks rows whose indicator value carries no usable
	// signal. It never appears in TabSummary counts.
	BucketUnclassified StatusBucket = "unclassified"
)

// Buckets lists the countable buckets in display order.
var Buckets = []StatusBucket{
	BucketCompleted,
	BucketAlmostComplete,
	BucketHalfDone,
	BucketWorkInProgress,
}
