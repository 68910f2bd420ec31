package mailing

import (
	"Cost-Calculator/internal/utils"
	"errors"
	"gopkg.in/gomail.v2"
	"strconv"
)

var ErrMailNotConfigured = errors.New("smtp is not configured")

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// NewMessage builds the mail without sending it.
func NewMessage(cfg MailConfig, toEmail, subject, body string) *gomail.Message {
	mailer := gomail.NewMessage()
	if cfg.SMTPSender != "" {
		mailer.SetAddressHeader("From", cfg.SMTPEmail, cfg.SMTPSender)
	} else {
		mailer.SetHeader("From", cfg.SMTPEmail)
	}
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	return mailer
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()
	if emailConfig.SMTPHost == "" {
		return ErrMailNotConfigured
	}

	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(NewMessage(emailConfig, toEmail, subject, body))
}
