package types

// Notifier reports an outcome to the customer over some channel.
// Variants format the message with a channel-specific prefix; no transport occurs.
type Notifier interface {
	// Send formats message for the channel and returns the formatted string.
	Send(message string) string
}

// Notification channels accepted by Config.Notifier.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)
