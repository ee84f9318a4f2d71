package constvars

const (
	LoginSuccessMessage          = "Successfully logged in"
	LogoutSuccessMessage         = "Successfully logged out"
	RegisterSuccessMessage       = "Successfully registered account"
	GetProfileSuccessMessage     = "Successfully fetched profile"
	ChangePasswordSuccessMessage = "Successfully changed password"
	ImageSelectedSuccessMessage  = "Image accepted for analysis"
	AnalysisSuccessMessage       = "Successfully processed image"
	GetResultSuccessMessage      = "Successfully fetched analysis result"
	SaveRecordSuccessMessage     = "Analysis saved successfully"
	GetActivitiesSuccessMessage  = "Successfully fetched activity log"

	// ReportSentSuccessFormat names the destination address, e.g.
	// "Report generated and sent successfully to jane@example.com".
	ReportSentSuccessFormat = "Report generated and sent successfully to %s"
)
