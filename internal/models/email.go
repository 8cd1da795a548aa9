package models

// EmailMessage is the wire payload exchanged with the mail delivery service.
// HTML is the rendered message body.
type EmailMessage struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}
