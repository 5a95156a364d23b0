package notify

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/itianclub/aptitude-quiz/config"
	"github.com/itianclub/aptitude-quiz/internal/model"
)

// ResultJob is a fully resolved delivery payload: everything the send needs
// is captured at scheduling time, so later mutations of shared state can
// never race with delivery.
type ResultJob struct {
	ID        string
	Recipient string
	Name      string
	Questions []model.QuizQuestion
	Answers   model.AnswerSet
	Verdicts  map[uint]bool
	Score     int
	NotBefore time.Time
	Attempts  int
}

// Sender delivers one result job.
type Sender interface {
	Send(job ResultJob) error
}

// SMTPMailer renders the detailed result analysis and sends it over SMTP.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	sender   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Mail.Host,
		port:     cfg.Mail.Port,
		username: cfg.Mail.Username,
		password: cfg.Mail.Password,
		sender:   cfg.Mail.Sender,
	}
}

func (m *SMTPMailer) Send(job ResultJob) error {
	subject := "Your Aptitude Quiz Results - ITian Club"
	body := buildResultEmail(job)

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: ITian Club <%s>\r\n", m.sender)
	msg += fmt.Sprintf("To: %s\r\n", job.Recipient)
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += body

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.sender, []string{job.Recipient}, []byte(msg))
}

// buildResultEmail renders the per-question analysis, grouped by category in
// presentation order.
func buildResultEmail(job ResultJob) string {
	var b strings.Builder

	percentage := 0.0
	if len(job.Questions) > 0 {
		percentage = float64(job.Score) / float64(len(job.Questions)) * 100
	}

	b.WriteString(`<html><body style="font-family: Arial, sans-serif; line-height: 1.6; max-width: 800px; margin: 0 auto;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 20px; color: white; text-align: center;"><h1>ITian Club Aptitude Quiz Results</h1></div>`)
	b.WriteString(`<div style="padding: 20px;"><h2>Congratulations!</h2>`)
	b.WriteString(`<p>Thank you for participating in the ITian Club Aptitude Quiz.</p>`)
	b.WriteString(fmt.Sprintf(`<div style="background: #f8f9fa; padding: 15px; border-radius: 8px; margin: 20px 0;"><h3>Your Score: %d/%d</h3><p>Percentage: %.1f%%</p></div>`,
		job.Score, len(job.Questions), percentage))
	b.WriteString(`<h3>Detailed Question Analysis:</h3>`)

	currentCategory := ""
	for _, q := range job.Questions {
		if q.Category != currentCategory {
			b.WriteString(fmt.Sprintf(`<h4 style="color: #667eea; margin-top: 20px;">%s Questions</h4>`, q.Category))
			currentCategory = q.Category
		}

		submitted := job.Answers[strconv.FormatUint(uint64(q.ID), 10)]
		correct := job.Verdicts[q.ID]

		statusColor := "#dc3545"
		statusText := "Incorrect"
		if correct {
			statusColor = "#28a745"
			statusText = "Correct"
		}
		yourAnswer := "No answer"
		if len(submitted) > 0 {
			yourAnswer = strings.Join(submitted, ", ")
		}

		b.WriteString(fmt.Sprintf(`<div style="background: white; border-left: 4px solid %s; padding: 15px; margin: 10px 0; border-radius: 4px;">`, statusColor))
		b.WriteString(fmt.Sprintf(`<p><strong>Q%d: %s</strong></p>`, q.ID, q.Text))
		b.WriteString(fmt.Sprintf(`<p style="margin: 5px 0;"><strong>Your Answer:</strong> %s</p>`, yourAnswer))
		b.WriteString(fmt.Sprintf(`<p style="margin: 5px 0;"><strong>Correct Answer:</strong> %s</p>`, strings.Join(q.Answer, ", ")))
		b.WriteString(fmt.Sprintf(`<p style="margin: 5px 0; color: %s;"><strong>Status:</strong> %s</p></div>`, statusColor, statusText))
	}

	b.WriteString(`<hr style="margin: 30px 0;">`)
	b.WriteString(`<p><em>Thank you for your participation!</em></p><p><strong>- ITian Club Team</strong></p></div></body></html>`)
	return b.String()
}
