package utils

import (
	"strconv"

	"github.com/wanderlk/tour-api/config"
	"gopkg.in/gomail.v2"
)

func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(config.Config("SMTP_PORT"))

	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("EMAIL_USER"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		config.Config("SMTP_HOST"),
		port,
		config.Config("EMAIL_USER"),
		config.Config("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}
