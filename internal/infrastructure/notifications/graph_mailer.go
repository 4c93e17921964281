package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"towdispatch/internal/infrastructure/config"
	"towdispatch/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	DefaultGraphBaseURL = "https://graph.microsoft.com"
	graphScope          = "https://graph.microsoft.com/.default"
)

var ErrInvalidRecipient = errors.New("invalid recipient")
var ErrGraphSendFailed = errors.New("graph sendMail failed")

// GraphMailer sends mail through Microsoft Graph as a fixed sender mailbox.
// SMS goes out as mail to <digits>@<smsDomain>.
type GraphMailer struct {
	client    *http.Client
	baseURL   string
	sender    string
	smsDomain string
}

var _ interfaces.INotifier = (*GraphMailer)(nil)

// NewNotifier returns a Graph mailer when credentials are configured and a
// logging notifier otherwise.
func NewNotifier(cfg config.GraphConfig) interfaces.INotifier {
	if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.Sender == "" {
		log.Printf("[notify][graph] credentials not configured, notifications are logged only")
		return LogNotifier{}
	}
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     "https://login.microsoftonline.com/" + url.PathEscape(cfg.TenantID) + "/oauth2/v2.0/token",
		Scopes:       []string{graphScope},
	}
	client := cc.Client(context.Background())
	client.Timeout = 15 * time.Second
	log.Printf("[notify][graph] mailer initialized sender=%s", cfg.Sender)
	return NewGraphMailer(client, DefaultGraphBaseURL, cfg.Sender, cfg.SMSGatewayDomain)
}

// NewGraphMailer expects client to attach the bearer token.
func NewGraphMailer(client *http.Client, baseURL, sender, smsDomain string) *GraphMailer {
	if client == nil {
		client = http.DefaultClient
	}
	return &GraphMailer{
		client:    client,
		baseURL:   strings.TrimRight(baseURL, "/"),
		sender:    sender,
		smsDomain: smsDomain,
	}
}

type graphAddress struct {
	EmailAddress struct {
		Address string `json:"address"`
	} `json:"emailAddress"`
}

type graphMessage struct {
	Subject string `json:"subject"`
	Body    struct {
		ContentType string `json:"contentType"`
		Content     string `json:"content"`
	} `json:"body"`
	ToRecipients []graphAddress `json:"toRecipients"`
}

type graphSendMailRequest struct {
	Message         graphMessage `json:"message"`
	SaveToSentItems bool         `json:"saveToSentItems"`
}

func (m *GraphMailer) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	return m.send(ctx, to, subject, "HTML", htmlBody)
}

func (m *GraphMailer) SendSMS(ctx context.Context, mobile, body string) error {
	to, err := SMSAddress(mobile, m.smsDomain)
	if err != nil {
		return err
	}
	return m.send(ctx, to, "", "Text", body)
}

func (m *GraphMailer) send(ctx context.Context, to, subject, contentType, content string) error {
	to = strings.TrimSpace(to)
	if to == "" || !strings.Contains(to, "@") {
		return errors.Wrapf(ErrInvalidRecipient, "recipient %q", to)
	}

	var msg graphSendMailRequest
	msg.Message.Subject = subject
	msg.Message.Body.ContentType = contentType
	msg.Message.Body.Content = content
	var addr graphAddress
	addr.EmailAddress.Address = to
	msg.Message.ToRecipients = []graphAddress{addr}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	endpoint := m.baseURL + "/v1.0/users/" + url.PathEscape(m.sender) + "/sendMail"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		log.Printf("[notify][graph] request failed to=%s err=%v", to, err)
		return errors.Wrap(err, "graph sendMail")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.Printf("[notify][graph] send rejected to=%s status=%d body=%s", to, resp.StatusCode, string(body))
		return errors.Wrapf(ErrGraphSendFailed, "status %d", resp.StatusCode)
	}
	log.Printf("[notify][graph] sent to=%s", to)
	return nil
}

// SMSAddress maps a mobile number onto the email-to-SMS gateway address.
func SMSAddress(mobile, domain string) (string, error) {
	var b strings.Builder
	for _, r := range mobile {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() < 6 || domain == "" {
		return "", errors.Wrapf(ErrInvalidRecipient, "mobile %q", mobile)
	}
	return b.String() + "@" + domain, nil
}

// LogNotifier is used when no mail transport is configured.
type LogNotifier struct{}

func (LogNotifier) SendEmail(_ context.Context, to, subject, _ string) error {
	log.Printf("[notify][log] email to=%s subject=%q", to, subject)
	return nil
}

func (LogNotifier) SendSMS(_ context.Context, mobile, body string) error {
	log.Printf("[notify][log] sms to=%s len=%d", mobile, len(body))
	return nil
}
