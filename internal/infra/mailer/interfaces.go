package mailer

// Sender delivers an HTML message to one recipient. Callers treat the
// send as fire-and-forget; a returned error only feeds the dispatch
// outcome, it never blocks the triggering state transition.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

var _ Sender = (*SMTPSender)(nil)
