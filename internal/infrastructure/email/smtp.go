package email

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"weiyue/internal/domain/review"
	"weiyue/internal/shared/biztime"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

var decisionText = map[review.Status]string{
	review.StatusApproved: "已通过",
	review.StatusRejected: "未通过",
}

var noticeTemplate = template.Must(template.New("notice").Parse(`<html>
<body>
	<p>{{.ApplicantName}}，您好：</p>
	<p>您提交的{{.Kind}}（编号 {{.ID}}，客户 {{.CustomerName}}）审核{{.Decision}}。</p>
	{{if .Remarks}}<p>审核意见：{{.Remarks}}</p>{{end}}
	<p>审核时间：{{.AuditedAt}}</p>
</body>
</html>`))

// SMTPNotifier mails audit outcomes to applicants.
type SMTPNotifier struct {
	config SMTPConfig
	send   func(m ...*gomail.Message) error
	policy *bluemonday.Policy
}

func NewSMTPNotifier(config SMTPConfig) *SMTPNotifier {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	return newSMTPNotifier(config, dialer.DialAndSend)
}

func newSMTPNotifier(config SMTPConfig, send func(m ...*gomail.Message) error) *SMTPNotifier {
	return &SMTPNotifier{
		config: config,
		send:   send,
		policy: bluemonday.StrictPolicy(),
	}
}

// NotifyAudit sends the outcome to the applicant. Applicants without an
// e-mail address are skipped.
func (s *SMTPNotifier) NotifyAudit(ctx context.Context, n review.Notice) error {
	if strings.TrimSpace(n.ApplicantEmail) == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	decision := decisionText[n.Decision]
	subject := fmt.Sprintf("【%s】%s 审核%s", n.ApplicationKind, n.ApplicationID, decision)

	var remarks string
	if n.Remarks != nil {
		remarks = html.UnescapeString(s.policy.Sanitize(*n.Remarks))
	}

	var body bytes.Buffer
	err := noticeTemplate.Execute(&body, map[string]string{
		"ApplicantName": n.ApplicantName,
		"Kind":          n.ApplicationKind,
		"ID":            n.ApplicationID,
		"CustomerName":  n.CustomerName,
		"Decision":      decision,
		"Remarks":       remarks,
		"AuditedAt":     biztime.Format(n.AuditedAt, time.DateTime),
	})
	if err != nil {
		return fmt.Errorf("failed to render notice: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", n.ApplicantEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
