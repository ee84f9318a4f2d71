package reports

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"aidentify-service/internal/app/models"
	"aidentify-service/internal/pkg/dto/requests"
)

const reportSubjectFormat = "Dental Analysis Report - %s"

// BuildReportEmail renders the detection table of a finished analysis into the
// HTML payload published to the mail queue.
func BuildReportEmail(identity models.PatientIdentity, result *models.AnalysisResult) *requests.EmailPayload {
	var rows strings.Builder
	for _, detection := range result.Detections {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%d%%</td><td>%s</td></tr>",
			detection.Label,
			detection.ConfidencePercent,
			detection.Note,
		))
	}

	var inlineImage string
	if len(result.ImageData) > 0 {
		inlineImage = fmt.Sprintf(
			`<p><img src="data:image/png;base64,%s" alt="Analyzed scan"/></p>`,
			base64.StdEncoding.EncodeToString(result.ImageData),
		)
	}

	body := fmt.Sprintf(`<html>
<body>
<h2>Dental Analysis Report</h2>
<p>Patient: %s</p>
<p>Date of birth: %s</p>
<p>Analysis: %s</p>
<p>Generated at: %s</p>
<table border="1" cellpadding="6" cellspacing="0">
<tr><th>Condition</th><th>Confidence</th><th>Note</th></tr>
%s
</table>
%s
</body>
</html>`,
		identity.FullName(),
		identity.DateOfBirth,
		string(result.Action),
		result.CreatedAt.Format(time.RFC1123),
		rows.String(),
		inlineImage,
	)

	return &requests.EmailPayload{
		To:       identity.Email,
		Subject:  fmt.Sprintf(reportSubjectFormat, identity.FullName()),
		HTMLBody: body,
	}
}
