package requests

// EmailPayload is the message body pushed to the mailer queue. A separate
// worker consumes the queue and does the actual SMTP delivery.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
