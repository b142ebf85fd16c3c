// Package notify implements the Notifier variants. Each variant prefixes the
// message with its channel name; nothing is actually transmitted.
package notify

import (
	"fmt"

	"github.com/mesh-intelligence/bikerental/pkg/types"
)

// Email formats messages as sent e-mails.
type Email struct{}

// Send returns "Email sent: " followed by message.
func (Email) Send(message string) string {
	return "Email sent: " + message
}

// SMS formats messages as sent text messages.
type SMS struct{}

// Send returns "SMS sent: " followed by message.
func (SMS) Send(message string) string {
	return "SMS sent: " + message
}

// New returns the Notifier for channel.
// Returns ErrNotifierUnknown for an unrecognized channel.
func New(channel string) (types.Notifier, error) {
	switch channel {
	case types.ChannelEmail:
		return Email{}, nil
	case types.ChannelSMS:
		return SMS{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrNotifierUnknown, channel)
	}
}
