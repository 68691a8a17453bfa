package cli

var (
	RenderReportForTest   = renderReport
	ParseRemoteURLForTest = parseRemoteURL
)
