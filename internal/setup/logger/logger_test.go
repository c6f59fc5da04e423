package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{
			name:  "debug level",
			level: "debug",
			want:  zerolog.DebugLevel,
		},
		{
			name:  "warn level",
			level: "warn",
			want:  zerolog.WarnLevel,
		},
		{
			name:  "unknown level falls back to info",
			level: "verbose",
			want:  zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.level)
			if got.GetLevel() != tt.want {
				t.Errorf("New(%q).GetLevel() = %v, want %v", tt.level, got.GetLevel(), tt.want)
			}
		})
	}
}
