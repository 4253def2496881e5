package mocks

// SentMail records one delivered message.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailSender implements mail.Sender for testing, recording every
// message it is asked to deliver.
type MockMailSender struct {
	// SendFn allows test cases to mock the Send behavior
	SendFn func(to, subject, body string) error

	// SendErr is returned when SendFn is not set
	SendErr error

	// Sent records delivered messages
	Sent []SentMail
}

// Send implements the mail.Sender interface.
func (m *MockMailSender) Send(to, subject, body string) error {
	if m.SendFn != nil {
		return m.SendFn(to, subject, body)
	}
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}
