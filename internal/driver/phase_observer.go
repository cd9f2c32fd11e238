package driver

// ProgressStatus reports where a batch run is.
type ProgressStatus int

const (
	// FilesQueued is sent once, before any file starts; Total is set.
	FilesQueued ProgressStatus = iota
	FileStarted
	FileDone
)

// Progress describes one step of a batch run.
type Progress struct {
	Status ProgressStatus
	Path   string
	Total  int
	Result *FormatResult // только для FileDone
}

// ProgressObserver receives progress events from FormatPaths. It is called
// from worker goroutines and must be safe for concurrent use.
type ProgressObserver func(Progress)
