// Package channels chứa các kênh gửi thông báo ra ngoài.
package channels

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/munkhjinod/erxes-api/config"
)

// EmailChannel gửi thông báo qua SMTP bằng gomail
type EmailChannel struct {
	from   string
	dialer *gomail.Dialer
}

// NewEmailChannel tạo kênh email từ cấu hình SMTP.
// Trả về nil nếu SMTP chưa được cấu hình (bỏ trống SMTP_HOST).
func NewEmailChannel(cfg *config.Configuration) *EmailChannel {
	if cfg.SMTP_Host == "" {
		return nil
	}
	return &EmailChannel{
		from:   cfg.SMTP_From,
		dialer: gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_Username, cfg.SMTP_Password),
	}
}

// Send gửi một email thông báo
func (c *EmailChannel) Send(to string, subject string, body string, link string) error {
	if to == "" {
		return fmt.Errorf("địa chỉ người nhận rỗng")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)

	html := fmt.Sprintf("<p>%s</p>", body)
	if link != "" {
		html += fmt.Sprintf(`<p><a href="%s">Xem chi tiết</a></p>`, link)
	}
	m.SetBody("text/html", html)

	return c.dialer.DialAndSend(m)
}
