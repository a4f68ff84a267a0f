package email

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"weiyue/internal/domain/review"
)

func captureNotifier(sent *[]*gomail.Message, err error) *SMTPNotifier {
	return newSMTPNotifier(SMTPConfig{FromAddress: "noreply@weiyue.local", FromName: "违约管理系统"}, func(m ...*gomail.Message) error {
		*sent = append(*sent, m...)
		return err
	})
}

func TestSMTPNotifier_NotifyAudit(t *testing.T) {
	var sent []*gomail.Message
	n := captureNotifier(&sent, nil)
	remarks := `<script>x</script>材料齐全 & 属实`

	err := n.NotifyAudit(context.Background(), review.Notice{
		ApplicationKind: "违约认定申请",
		ApplicationID:   "DEF0001",
		CustomerName:    "华东建材集团",
		ApplicantName:   "张三",
		ApplicantEmail:  "zhang@example.com",
		Decision:        review.StatusApproved,
		Remarks:         &remarks,
		AuditedAt:       time.Date(2024, 6, 1, 2, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)

	assert.Equal(t, []string{"zhang@example.com"}, sent[0].GetHeader("To"))

	var buf bytes.Buffer
	_, err = sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<script>")
}

func TestSMTPNotifier_SkipsWithoutAddress(t *testing.T) {
	var sent []*gomail.Message
	n := captureNotifier(&sent, nil)

	err := n.NotifyAudit(context.Background(), review.Notice{ApplicationID: "REC0001", Decision: review.StatusRejected})
	assert.NoError(t, err)
	assert.Empty(t, sent)
}

func TestSMTPNotifier_SendFailure(t *testing.T) {
	var sent []*gomail.Message
	n := captureNotifier(&sent, errors.New("dial tcp: connection refused"))

	err := n.NotifyAudit(context.Background(), review.Notice{
		ApplicationID:  "DEF0002",
		ApplicantEmail: "li@example.com",
		Decision:       review.StatusRejected,
	})
	assert.ErrorContains(t, err, "failed to send email")
}
