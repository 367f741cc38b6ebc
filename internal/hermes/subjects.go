package hermes

const (
	SubjectEntityScored = "alignment.entity.scored"

	StreamName   = "ALIGNMENT_EVENTS"
	StreamMaxAge = "2160h" // 90 days
)

func SubjectReportGenerated(reportID string) string {
	return "alignment.report." + reportID + ".generated"
}
