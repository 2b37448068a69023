package notify

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
	"sensareal.xyz/telemetry-service/pkg/common"
)

type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host string, port int, username, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (n *SMTPNotifier) Send(recipient, subject, body string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTelemetryCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryNotify),
	)

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(m); err != nil {
		return err
	}

	logger.Info("Alert email sent", zap.String("to", recipient), zap.String("subject", subject))
	return nil
}
