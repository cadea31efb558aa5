package mail

// Mailer sends one outbound message. Implementations must treat missing
// configuration as "notifications disabled" and no-op rather than fail.
type Mailer interface {
	Send(subject, body string, recipients []string) error
}
