package types

// AnalysisStatus is the phase of a single vibe check request.
type AnalysisStatus string

const (
	AnalysisStatusIdle       AnalysisStatus = "idle"
	AnalysisStatusCollecting AnalysisStatus = "collecting"
	AnalysisStatusAnalyzing  AnalysisStatus = "analyzing"
	AnalysisStatusCompleted  AnalysisStatus = "completed"
	AnalysisStatusError      AnalysisStatus = "error"
)

func (x AnalysisStatus) String() string {
	return string(x)
}
