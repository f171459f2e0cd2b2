package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"arena/internal/logger"
	"arena/internal/metrics"
)

const (
	queueKey   = "emails"
	failedKey  = "emails:failed"
	maxTries   = 3
	timeLayout = "Mon Jan 2, 2006 at 15:04"
)

const (
	KindGeneric          = "generic"
	KindBookingReceived  = "booking_received"
	KindBookingApproved  = "booking_approved"
	KindBookingRejected  = "booking_rejected"
	KindBookingCancelled = "booking_cancelled"
	KindUserApproved     = "user_approved"
	KindInvoiceIssued    = "invoice_issued"
)

type EmailJob struct {
	Kind    string    `json:"kind"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// BookingNotice carries what the booking templates print.
type BookingNotice struct {
	ResourceName string
	PartName     string
	Title        string
	Start        time.Time
	End          time.Time
	Occurrences  int
	Reason       string
}

type Service struct {
	redis      *redis.Client
	from       string
	fromName   string
	smtpHost   string
	smtpPort   string
	smtpUser   string
	smtpPass   string
	retryDelay time.Duration
	deliver    func(EmailJob) error
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: redisAddr}),
		fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass)
}

func NewWithClient(client *redis.Client, fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass string) *Service {
	s := &Service{
		redis:      client,
		from:       fromEmail,
		fromName:   fromName,
		smtpHost:   smtpHost,
		smtpPort:   smtpPort,
		smtpUser:   smtpUser,
		smtpPass:   smtpPass,
		retryDelay: 5 * time.Second,
	}
	s.deliver = s.sendNow
	return s
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	return s.enqueue(ctx, KindGeneric, to, name, subject, body)
}

func (s *Service) enqueue(ctx context.Context, kind, to, name, subject, body string) error {
	job := EmailJob{
		Kind:    kind,
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal email job: %w", err)
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Error("Failed to queue email", "to", to, "kind", kind, "error", err)
		metrics.RecordEmail(kind, "queue_failed")
		return fmt.Errorf("queue email: %w", err)
	}

	logger.Info("Email queued", "to", to, "kind", kind)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Error("Bad email data", "error", err)
		return
	}

	job.Tries++
	if err := s.deliver(job); err != nil {
		logger.Error("Failed to send email", "to", job.To, "attempt", job.Tries, "error", err)

		if job.Tries < maxTries {
			s.retry(ctx, job)
		} else {
			metrics.RecordEmail(job.Kind, "failed")
			s.saveFailed(ctx, job, err)
		}
		return
	}

	metrics.RecordEmail(job.Kind, "success")
	logger.Info("Email sent", "to", job.To, "kind", job.Kind)
}

func (s *Service) retry(ctx context.Context, job EmailJob) {
	if s.retryDelay > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(s.retryDelay):
		}
	}

	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.WithoutCancel(ctx), queueKey, string(data)).Err(); err != nil {
		logger.Error("Failed to requeue email", "to", job.To, "error", err)
	}
}

func (s *Service) sendNow(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(ctx context.Context, job EmailJob, err error) {
	failed := map[string]any{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.WithoutCancel(ctx), failedKey, string(data))
	logger.Error("Email moved to failed queue", "to", job.To, "kind", job.Kind)
}

// QueueLength reports the pending jobs and updates the queue gauge.
func (s *Service) QueueLength(ctx context.Context) int64 {
	length, err := s.redis.LLen(ctx, queueKey).Result()
	if err != nil {
		return 0
	}
	metrics.EmailQueueLength.Set(float64(length))
	return length
}

func (s *Service) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (n BookingNotice) where() string {
	if n.PartName == "" {
		return n.ResourceName
	}
	return n.ResourceName + " / " + n.PartName
}

func (n BookingNotice) when() string {
	s := fmt.Sprintf("%s - %s", n.Start.Format(timeLayout), n.End.Format("15:04"))
	if n.Occurrences > 1 {
		s += fmt.Sprintf(" (%d occurrences)", n.Occurrences)
	}
	return s
}

func (s *Service) SendBookingReceived(ctx context.Context, to, name string, n BookingNotice) error {
	subject := "Booking request received - " + n.ResourceName
	body := fmt.Sprintf(`Hi %s,

We received your booking request "%s".

Where: %s
When: %s

You will get another email once an administrator has reviewed it.

- %s`, name, n.Title, n.where(), n.when(), s.fromName)

	return s.enqueue(ctx, KindBookingReceived, to, name, subject, body)
}

func (s *Service) SendBookingApproved(ctx context.Context, to, name string, n BookingNotice) error {
	subject := "Booking approved - " + n.ResourceName
	body := fmt.Sprintf(`Hi %s,

Your booking "%s" is approved.

Where: %s
When: %s

- %s`, name, n.Title, n.where(), n.when(), s.fromName)

	return s.enqueue(ctx, KindBookingApproved, to, name, subject, body)
}

func (s *Service) SendBookingRejected(ctx context.Context, to, name string, n BookingNotice) error {
	reason := n.Reason
	if reason == "" {
		reason = "No reason given"
	}
	subject := "Booking rejected - " + n.ResourceName
	body := fmt.Sprintf(`Hi %s,

Unfortunately your booking "%s" was rejected.

Where: %s
When: %s
Reason: %s

- %s`, name, n.Title, n.where(), n.when(), reason, s.fromName)

	return s.enqueue(ctx, KindBookingRejected, to, name, subject, body)
}

func (s *Service) SendBookingCancelled(ctx context.Context, to, name string, n BookingNotice) error {
	subject := "Booking cancelled - " + n.ResourceName
	body := fmt.Sprintf(`Hi %s,

Your booking "%s" has been cancelled.

Where: %s
When: %s

- %s`, name, n.Title, n.where(), n.when(), s.fromName)

	return s.enqueue(ctx, KindBookingCancelled, to, name, subject, body)
}

func (s *Service) SendUserApproved(ctx context.Context, to, name string) error {
	subject := "Your account is active"
	body := fmt.Sprintf(`Hi %s,

An administrator approved your account. You can now sign in and book facilities.

- %s`, name, s.fromName)

	return s.enqueue(ctx, KindUserApproved, to, name, subject, body)
}

func (s *Service) SendInvoiceIssued(ctx context.Context, to, name string, invoiceID int, amountCents int64) error {
	subject := fmt.Sprintf("Invoice #%d", invoiceID)
	body := fmt.Sprintf(`Hi %s,

Invoice #%d for %d.%02d is ready.

- %s`, name, invoiceID, amountCents/100, amountCents%100, s.fromName)

	return s.enqueue(ctx, KindInvoiceIssued, to, name, subject, body)
}
