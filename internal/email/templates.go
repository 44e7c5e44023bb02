package email

import (
	"fmt"
	"html"

	"mindhub/internal/config"
	"mindhub/internal/models"
)

// Templates renders notification bodies.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in the shared email layout.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #6d28d9; color: white; padding: 20px; text-align: center; border-radius: 12px 12px 0 0; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { background: #faf5ff; padding: 20px; border: 1px solid #e9d5ff; }
        .footer { padding: 15px; text-align: center; font-size: 12px; color: #64748b; }
        .info-box { background: white; border: 1px solid #e9d5ff; border-radius: 8px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; }
        .note { font-size: 13px; color: #64748b; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>%s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteFooter), t.cfg.BaseURL, t.cfg.BaseURL)
}

// AppointmentConfirmation is sent to the person who booked a session.
func (t *Templates) AppointmentConfirmation(a *models.Appointment) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Appointment request received", t.cfg.SiteTitle)
	date := a.Date.Format("Monday, January 2, 2006")

	content := fmt.Sprintf(`
        <p>Hi %s,</p>
        <p>Thank you for reaching out. We received your appointment request and a counselor will contact you to confirm the time.</p>

        <div class="info-box">
            <p><span class="label">Preferred date:</span> %s</p>
            <p><span class="label">Phone:</span> %s</p>
            <p><span class="label">Reference:</span> %s</p>
        </div>

        <p class="note">If you are in crisis, please call 988 (US) or visit your nearest emergency room. Do not wait for your appointment.</p>
    `,
		html.EscapeString(a.FullName),
		date,
		html.EscapeString(a.Phone),
		a.ID,
	)

	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(`Hi %s,

We received your appointment request. A counselor will contact you to confirm the time.

Preferred date: %s
Phone: %s
Reference: %s

If you are in crisis, please call 988 (US) or visit your nearest emergency room.

--
%s
%s`,
		a.FullName,
		date,
		a.Phone,
		a.ID,
		t.cfg.SiteTitle,
		t.cfg.BaseURL,
	)

	return
}
