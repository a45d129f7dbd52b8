package summary

// TierStats holds the aggregate for one reported tier.
type TierStats struct {
	Label    string
	Segments int
	Duration int // ms
}

// FileSummary is one output row: per-file totals for each reported tier.
type FileSummary struct {
	Name      string
	TotalTime int // ms, max annotation end across all tiers
	Tiers     []TierStats
}

// FileError records a file that could not be processed.
type FileError struct {
	Path string
	Err  error
}
