package domain

import "time"

// OwnerStatistics is an on-demand aggregation over an owner's active
// files, shares and access logs. Computed by scanning, not maintained
// incrementally; cost grows with the owner's file count.
type OwnerStatistics struct {
	TotalFiles     int64
	TotalSizeBytes int64
	CategoryCounts map[Category]int64
	ShareOutCount  int64
	ShareInCount   int64
	TotalUploads   int64
	TotalDownloads int64
	TotalPreviews  int64
	LastUploadedAt *time.Time
}

// TrashStats summarizes an owner's recycle bin.
type TrashStats struct {
	TotalFiles     int64
	TotalSizeBytes int64
	OldestTrashed  *time.Time
}
