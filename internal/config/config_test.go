package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{"JWT_KEY": "secret"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "8080", cfg.Port)
				assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
				assert.Equal(t, 1, cfg.Access.Administrator)
				assert.Equal(t, 3, cfg.Access.User)
				assert.Equal(t, "orders", cfg.Collections.Order)
				assert.Equal(t, "github", cfg.CORSOriginKeyword)
				assert.Empty(t, cfg.RabbitURL)
			},
		},
		{
			name: "env overrides",
			env: map[string]string{
				"JWT_KEY":                    "secret",
				"PORT":                       "3000",
				"ACCESS_RIGHT_ADMINISTRATOR": "9",
				"COLLECTION_ORDER":           "shop_orders",
				"ALLOW_CORS":                 "true",
				"JWT_TTL":                    "1h",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "3000", cfg.Port)
				assert.Equal(t, 9, cfg.Access.Administrator)
				assert.Equal(t, "shop_orders", cfg.Collections.Order)
				assert.True(t, cfg.AllowCORS)
				assert.Equal(t, time.Hour, cfg.JWTTTL)
			},
		},
		{
			name:    "missing jwt key",
			env:     map[string]string{"JWT_KEY": ""},
			wantErr: true,
		},
		{
			name:    "bad cache size",
			env:     map[string]string{"JWT_KEY": "secret", "IMAGE_CACHE_SIZE": "0"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
