package service

import (
	"fmt"
	"strings"

	"github.com/DevanshuTiwaskar/portfolio/internal/mailer"
	"github.com/DevanshuTiwaskar/portfolio/internal/model"
)

type notification struct {
	kind string
	msg  mailer.Message
}

var headerSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

// adminNotification tells the site owner about a new message. Replies go to the submitter.
func adminNotification(m *model.ContactMessage, from, adminEmail string) mailer.Message {
	return mailer.Message{
		From:    from,
		To:      adminEmail,
		ReplyTo: headerSanitizer.Replace(m.Email),
		Subject: headerSanitizer.Replace("New Contact Form Submission - " + m.InquiryType()),
		HTML: fmt.Sprintf(`<h3>%s sent a message</h3>
<p><strong>Email:</strong> %s</p>
<p><strong>Type:</strong> %s</p>
<p><strong>Message:</strong><br>%s</p>`,
			mailer.EscapeHTML(m.Name),
			mailer.EscapeHTML(m.Email),
			mailer.EscapeHTML(m.InquiryType()),
			mailer.EscapeMultiline(m.Message),
		),
	}
}

// confirmation acknowledges receipt to the submitter and echoes their message.
func confirmation(m *model.ContactMessage, from, adminEmail string) mailer.Message {
	return mailer.Message{
		From:    from,
		To:      headerSanitizer.Replace(m.Email),
		ReplyTo: adminEmail,
		Subject: "We received your message!",
		HTML: fmt.Sprintf(`<p>Hi %s,</p>
<p>Thank you for contacting me. I have received your message and will get back to you shortly.</p>
<p><strong>Your message:</strong><br>%s</p>`,
			mailer.EscapeHTML(m.Name),
			mailer.EscapeMultiline(m.Message),
		),
	}
}
