package notify

// Notifier delivers one alert message to one recipient. The dispatcher treats
// delivery as all-or-nothing: an error means nothing was recorded as sent.
type Notifier interface {
	Send(recipient, subject, body string) error
}
