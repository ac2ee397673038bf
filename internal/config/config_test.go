package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_BodyLimits(t *testing.T) {
	tests := []struct {
		name       string
		env        map[string]string
		wantUpload int64
		wantBody   int64
	}{
		{
			name:       "padrões",
			wantUpload: 5 * 1024 * 1024,
			wantBody:   10 * 1024 * 1024,
		},
		{
			name:       "limites do ambiente",
			env:        map[string]string{"UPLOAD_MAX_BYTES": "1024", "BODY_MAX_BYTES": "2048"},
			wantUpload: 1024,
			wantBody:   2048,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ANALYSIS_CONFIG_PATH", "")
			t.Setenv("UPLOAD_MAX_BYTES", "")
			t.Setenv("BODY_MAX_BYTES", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			config, err := NewConfig()
			require.NoError(t, err)

			assert.Equal(t, tt.wantUpload, config.Upload.MaxBytes)
			assert.Equal(t, tt.wantBody, config.Upload.BodyMaxBytes)
			assert.NotNil(t, config.Rules)
		})
	}
}
