package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"towdispatch/internal/infrastructure/config"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	path string
	body graphSendMailRequest
}

func newGraphServer(t *testing.T, status int, got *[]capturedMail) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphSendMailRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*got = append(*got, capturedMail{path: r.URL.Path, body: req})
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGraphMailer_SendEmail(t *testing.T) {
	var got []capturedMail
	srv := newGraphServer(t, http.StatusAccepted, &got)
	m := NewGraphMailer(srv.Client(), srv.URL, "dispatch@hooktowing.co.nz", "sms.example.co.nz")

	err := m.SendEmail(context.Background(), "jo@example.com", "Booking HT-1", "<p>hi</p>")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/v1.0/users/dispatch@hooktowing.co.nz/sendMail", got[0].path)
	assert.Equal(t, "Booking HT-1", got[0].body.Message.Subject)
	assert.Equal(t, "HTML", got[0].body.Message.Body.ContentType)
	assert.Equal(t, "jo@example.com", got[0].body.Message.ToRecipients[0].EmailAddress.Address)
}

func TestGraphMailer_SendSMS(t *testing.T) {
	var got []capturedMail
	srv := newGraphServer(t, http.StatusAccepted, &got)
	m := NewGraphMailer(srv.Client(), srv.URL, "dispatch@hooktowing.co.nz", "sms.example.co.nz")

	require.NoError(t, m.SendSMS(context.Background(), "+64 21 555 0101", "Your tow is on the way"))
	require.Len(t, got, 1)
	assert.Equal(t, "64215550101@sms.example.co.nz", got[0].body.Message.ToRecipients[0].EmailAddress.Address)
	assert.Equal(t, "Text", got[0].body.Message.Body.ContentType)
}

func TestGraphMailer_Errors(t *testing.T) {
	t.Run("rejected by graph", func(t *testing.T) {
		var got []capturedMail
		srv := newGraphServer(t, http.StatusForbidden, &got)
		m := NewGraphMailer(srv.Client(), srv.URL, "dispatch@hooktowing.co.nz", "sms.example.co.nz")

		err := m.SendEmail(context.Background(), "jo@example.com", "s", "b")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrGraphSendFailed))
	})

	t.Run("bad recipient", func(t *testing.T) {
		m := NewGraphMailer(nil, "http://unused", "s@x", "sms.example.co.nz")
		assert.True(t, errors.Is(m.SendEmail(context.Background(), "not-an-address", "s", "b"), ErrInvalidRecipient))
		assert.True(t, errors.Is(m.SendSMS(context.Background(), "12", "b"), ErrInvalidRecipient))
	})
}

func TestNewNotifier_Unconfigured(t *testing.T) {
	n := NewNotifier(config.GraphConfig{})
	_, ok := n.(LogNotifier)
	require.True(t, ok)
	require.NoError(t, n.SendEmail(context.Background(), "a@b", "s", "b"))
}
