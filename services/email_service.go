package services

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// SMTPConfig holds mail delivery configuration, taken from the env struct
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// EmailService handles sending emails via SMTP
type EmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService creates a new email service instance
func NewEmailService(config SMTPConfig) *EmailService {
	host := config.Host
	if host == "" {
		host = "smtp.gmail.com"
	}

	port := 587
	if config.Port != "" {
		fmt.Sscanf(config.Port, "%d", &port)
	}

	from := config.From
	if from == "" {
		from = "noreply@cherryclub.kr"
	}

	return &EmailService{
		host:     host,
		port:     port,
		username: config.User,
		password: config.Pass,
		from:     from,
	}
}

// IsConfigured checks if SMTP is properly configured
func (e *EmailService) IsConfigured() bool {
	return e.username != "" && e.password != ""
}

// SendVerificationCode sends a verification code email to the given address.
// When SMTP is not configured the code is logged instead so local
// development still works without a mail account.
func (e *EmailService) SendVerificationCode(toEmail, code string) error {
	if !e.IsConfigured() {
		log.Warnf("SMTP not configured, verification code for %s: %s", toEmail, code)
		return nil
	}

	subject := "체리동아리 이메일 인증번호"
	body := e.buildVerificationEmailBody(code)

	return e.sendEmail(toEmail, subject, body)
}

// buildVerificationEmailBody creates the HTML email body for the code
func (e *EmailService) buildVerificationEmailBody(code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>체리동아리 이메일 인증</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Noto Sans KR', sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f5f5f5;
        }
        .container {
            background-color: #ffffff;
            border-radius: 8px;
            padding: 40px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);
        }
        .logo {
            text-align: center;
            margin-bottom: 30px;
            padding-bottom: 20px;
            border-bottom: 2px solid #c2185b;
        }
        .logo h1 {
            color: #c2185b;
            font-size: 28px;
            margin: 0;
        }
        .code {
            text-align: center;
            font-size: 36px;
            font-weight: 700;
            letter-spacing: 8px;
            color: #c2185b;
            background-color: #fce4ec;
            border-radius: 6px;
            padding: 20px;
            margin: 25px 0;
        }
        .footer {
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            font-size: 12px;
            color: #666;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">
            <h1>체리동아리</h1>
        </div>

        <p>아래 인증번호를 입력해 주세요.</p>

        <div class="code">%s</div>

        <p>인증번호는 5분 동안 유효합니다. 본인이 요청하지 않았다면 이 메일을 무시하셔도 됩니다.</p>

        <div class="footer">
            <p><strong>체리동아리</strong></p>
        </div>
    </div>
</body>
</html>`, code)
}

// sendEmail sends an email using SMTP with TLS
func (e *EmailService) sendEmail(to, subject, htmlBody string) error {
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("체리동아리 <%s>", e.from)
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	auth := smtp.PlainAuth("", e.username, e.password, e.host)

	tlsConfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         e.host,
	}

	conn, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	if err := conn.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if err := conn.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := conn.Mail(e.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err := conn.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	if _, err = w.Write([]byte(message.String())); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}

	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	conn.Quit()

	log.Infof("Verification email sent to: %s", to)
	return nil
}
