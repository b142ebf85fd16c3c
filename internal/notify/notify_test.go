package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

func TestSend(t *testing.T) {
	tests := []struct {
		name     string
		notifier types.Notifier
		message  string
		want     string
	}{
		{"email", Email{}, "Bike rented", "Email sent: Bike rented"},
		{"sms", SMS{}, "Bike rented", "SMS sent: Bike rented"},
		{"email empty message", Email{}, "", "Email sent: "},
		{"sms empty message", SMS{}, "", "SMS sent: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.notifier.Send(tt.message))
		})
	}
}

func TestNew(t *testing.T) {
	n, err := New(types.ChannelEmail)
	require.NoError(t, err)
	assert.Equal(t, Email{}, n)

	n, err = New(types.ChannelSMS)
	require.NoError(t, err)
	assert.Equal(t, SMS{}, n)

	_, err = New("carrier-pigeon")
	assert.ErrorIs(t, err, types.ErrNotifierUnknown)
}
