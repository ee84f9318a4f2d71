package requests

// EmailPayload is the message published to the mail queue and consumed by the
// report worker.
type EmailPayload struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}
