package email

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// NoticeData is the content of a notice announcement
type NoticeData struct {
	Title    string
	Content  string
	Type     string
	Priority string
	PostedAt time.Time
}

// NoticeEmail renders the fan-out message for a newly published notice
func NoticeEmail(n NoticeData) (subject, body string) {
	subject = fmt.Sprintf("[GCETT Notice] %s", n.Title)
	body = fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">%s</h2>
				<p><strong>Type:</strong> %s &middot; <strong>Priority:</strong> %s</p>
				<div style="margin: 20px 0;">%s</div>
				<p style="color: #888; font-size: 12px;">Posted on %s</p>
				<p>Best regards,<br>GCETT Student Directory</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(n.Title),
		html.EscapeString(n.Type),
		html.EscapeString(n.Priority),
		paragraphs(n.Content),
		n.PostedAt.Format("02 Jan 2006 15:04"))
	return subject, body
}

// OTPEmail renders the interest-update verification code message
func OTPEmail(name, code string, ttl time.Duration) (subject, body string) {
	subject = "Your GCETT interest update code"
	body = fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Hello %s,</p>
				<p>Use this code to update your interests in the student directory:</p>
				<p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">%s</p>
				<p>The code expires in %d minutes. If you did not ask for it, ignore this email.</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(name), html.EscapeString(code), int(ttl.Minutes()))
	return subject, body
}

// SubmissionData is the operator copy of a skill-test submission
type SubmissionData struct {
	Name        string
	Email       string
	Phone       string
	LinkedinID  string
	Description string
	Category    string
	Files       []FileLink
	SubmittedAt time.Time
}

// FileLink is one attachment of a submission. URL is empty when the
// upload did not succeed.
type FileLink struct {
	Label string
	Name  string
	URL   string
}

// SubmissionEmail renders the operator notification for a submission
func SubmissionEmail(s SubmissionData) (subject, body string) {
	subject = fmt.Sprintf("New %s Portfolio Submission - %s", s.Category, s.Name)

	var files strings.Builder
	for _, f := range s.Files {
		if f.URL == "" {
			fmt.Fprintf(&files, `<li>%s: %s (upload failed)</li>`,
				html.EscapeString(f.Label), html.EscapeString(f.Name))
			continue
		}
		fmt.Fprintf(&files, `<li>%s: <a href="%s">%s</a></li>`,
			html.EscapeString(f.Label), html.EscapeString(f.URL), html.EscapeString(f.Name))
	}
	if files.Len() == 0 {
		files.WriteString("<li>No files uploaded</li>")
	}

	body = fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">New submission (%s)</h2>
				<p><strong>Name:</strong> %s</p>
				<p><strong>Email:</strong> %s</p>
				<p><strong>Phone:</strong> %s</p>
				<p><strong>LinkedIn:</strong> %s</p>
				<p><strong>Description:</strong></p>
				<div>%s</div>
				<ul>%s</ul>
				<p style="color: #888; font-size: 12px;">Submitted on %s</p>
			</div>
		</body>
		</html>
	`, html.EscapeString(s.Category),
		html.EscapeString(s.Name),
		html.EscapeString(s.Email),
		html.EscapeString(s.Phone),
		html.EscapeString(s.LinkedinID),
		paragraphs(s.Description),
		files.String(),
		s.SubmittedAt.Format("02 Jan 2006 15:04"))
	return subject, body
}

func paragraphs(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var b strings.Builder
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(l))
		b.WriteString("</p>")
	}
	return b.String()
}
