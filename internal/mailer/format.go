package mailer

import "strings"

// PlaceholderDomain is used for the sender address when no usable admin
// address is configured.
const PlaceholderDomain = "resend.dev"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML replaces & < > " ' with their entities so user input can be
// interpolated into an HTML body.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeMultiline escapes s and turns line breaks into <br>.
func EscapeMultiline(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(EscapeHTML(s), "\n", "<br>")
}

// SenderDomain returns the part of adminEmail after its single "@", or
// PlaceholderDomain when adminEmail is empty or does not contain exactly one "@".
func SenderDomain(adminEmail string) string {
	if strings.Count(adminEmail, "@") != 1 {
		return PlaceholderDomain
	}
	_, domain, _ := strings.Cut(adminEmail, "@")
	if domain = strings.TrimSpace(domain); domain == "" {
		return PlaceholderDomain
	}
	return domain
}

// FromAddress returns override when set, otherwise a no-reply address on the
// domain derived from adminEmail.
func FromAddress(override, adminEmail string) string {
	if override != "" {
		return override
	}
	return "Portfolio Contact <no-reply@" + SenderDomain(adminEmail) + ">"
}
