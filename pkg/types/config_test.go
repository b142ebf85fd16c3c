package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty notifier returns ErrNotifierUnknown",
			config:  Config{Notifier: "", Backend: BackendMemory},
			wantErr: ErrNotifierUnknown,
		},
		{
			name:    "unknown notifier returns ErrNotifierUnknown",
			config:  Config{Notifier: "pager", Backend: BackendMemory},
			wantErr: ErrNotifierUnknown,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Notifier: ChannelSMS, Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "default config is valid",
			config:  DefaultConfig(),
			wantErr: nil,
		},
		{
			name:    "sms with sqlite and fleet is valid",
			config:  Config{Notifier: ChannelSMS, Backend: BackendSQLite, Fleet: "fleet.yaml"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
