package types

import "errors"

// Config selects the capability variants the rental driver wires together.
type Config struct {
	Notifier string `json:"notifier" yaml:"notifier"`
	Backend  string `json:"backend" yaml:"backend"`
	Fleet    string `json:"fleet" yaml:"fleet"`
}

// Config validation errors.
var (
	ErrNotifierUnknown = errors.New("unknown notifier channel")
	ErrBackendUnknown  = errors.New("unknown searcher backend")
)

// knownNotifiers lists the channels that Validate accepts.
var knownNotifiers = map[string]bool{
	ChannelEmail: true,
	ChannelSMS:   true,
}

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendMemory: true,
	BackendSQLite: true,
}

// DefaultConfig returns the configuration used when nothing is set:
// email notifications and the in-memory registry.
func DefaultConfig() Config {
	return Config{
		Notifier: ChannelEmail,
		Backend:  BackendMemory,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Fleet is optional and not checked here.
func (c Config) Validate() error {
	if !knownNotifiers[c.Notifier] {
		return ErrNotifierUnknown
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}
