package twilio

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"parceltrack/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageCreator struct {
	calls    []*twilioapi.CreateMessageParams
	err      error
	response *twilioapi.ApiV2010Message
}

func (f *fakeMessageCreator) CreateMessage(
	params *twilioapi.CreateMessageParams,
) (*twilioapi.ApiV2010Message, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNotifier(api messageCreator) *SMSNotifier {
	return &SMSNotifier{
		api:     api,
		from:    "+15550000000",
		baseURL: "https://tracker.example.com",
		logger:  testLogger(),
	}
}

func testDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery("A1", "Warehouse 4", "12 Main St", "+15551234567")
	require.NoError(t, err)
	return d
}

func TestConfig_Enabled(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		enabled bool
	}{
		{name: "all_credentials", cfg: Config{AccountSID: "AC1", AuthToken: "tok", FromNumber: "+1555"}, enabled: true},
		{name: "missing_sid", cfg: Config{AuthToken: "tok", FromNumber: "+1555"}, enabled: false},
		{name: "missing_token", cfg: Config{AccountSID: "AC1", FromNumber: "+1555"}, enabled: false},
		{name: "missing_number", cfg: Config{AccountSID: "AC1", AuthToken: "tok"}, enabled: false},
		{name: "nothing", cfg: Config{}, enabled: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.enabled, tc.cfg.Enabled())
		})
	}
}

func TestNewSMSNotifier_MissingCredentials_DisabledNoOp(t *testing.T) {
	n := NewSMSNotifier(Config{PublicBaseURL: "https://tracker.example.com"}, testLogger())

	// Disabled notifier reports failure but never errors.
	assert.False(t, n.DeliveryCreated(context.Background(), testDelivery(t)))
	assert.False(t, n.DeliveryCompleted(context.Background(), testDelivery(t)))
}

func TestSMSNotifier_MessageTemplates(t *testing.T) {
	testCases := []struct {
		name     string
		notify   func(n *SMSNotifier, d *delivery.Delivery) bool
		expected string
	}{
		{
			name:   "created_includes_share_link",
			notify: func(n *SMSNotifier, d *delivery.Delivery) bool { return n.DeliveryCreated(context.Background(), d) },
			expected: "Your parcel has been received!\nOrder ID: A1\n" +
				"Please share your location: https://tracker.example.com/share/A1",
		},
		{
			name:     "location_received",
			notify:   func(n *SMSNotifier, d *delivery.Delivery) bool { return n.LocationReceived(context.Background(), d) },
			expected: "✅ Delivery Bot received your location! Order ID: A1",
		},
		{
			name:     "completed",
			notify:   func(n *SMSNotifier, d *delivery.Delivery) bool { return n.DeliveryCompleted(context.Background(), d) },
			expected: "✅ Your parcel (Order A1) has been delivered!",
		},
		{
			name:     "failed",
			notify:   func(n *SMSNotifier, d *delivery.Delivery) bool { return n.DeliveryFailed(context.Background(), d) },
			expected: "⚠️ Delivery failed for Order A1. Please contact support.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sid := "SM123"
			fake := &fakeMessageCreator{response: &twilioapi.ApiV2010Message{Sid: &sid}}
			n := testNotifier(fake)

			ok := tc.notify(n, testDelivery(t))

			assert.True(t, ok)
			require.Len(t, fake.calls, 1)
			params := fake.calls[0]
			require.NotNil(t, params.Body)
			assert.Equal(t, tc.expected, *params.Body)
			require.NotNil(t, params.To)
			assert.Equal(t, "+15551234567", *params.To)
			require.NotNil(t, params.From)
			assert.Equal(t, "+15550000000", *params.From)
		})
	}
}

func TestSMSNotifier_ProviderError_SwallowedAndReportedFalse(t *testing.T) {
	fake := &fakeMessageCreator{err: errors.New("provider rejected")}
	n := testNotifier(fake)

	ok := n.DeliveryCreated(context.Background(), testDelivery(t))

	assert.False(t, ok)
	assert.Len(t, fake.calls, 1)
}

func TestSMSNotifier_NilSidResponse_StillAccepted(t *testing.T) {
	fake := &fakeMessageCreator{response: &twilioapi.ApiV2010Message{}}
	n := testNotifier(fake)

	assert.True(t, n.LocationReceived(context.Background(), testDelivery(t)))
}
