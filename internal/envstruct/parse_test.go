package envstruct_test

import (
	"testing"

	"github.com/aarnio/casedesk/internal/envstruct"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	type config struct {
		Addr      string `env:"CASEDESK_ADDR" envDefault:"localhost:4000"`
		SqliteURL string `env:"CASEDESK_SQLITE_URL"`
		Untagged  string
	}

	tests := []struct {
		name      string
		v         any
		lookupEnv func(string) (string, bool)
		want      any
		wantErr   error
	}{
		{
			name:      "nil",
			v:         nil,
			lookupEnv: func(_ string) (string, bool) { return "", false },
			wantErr:   envstruct.ErrInvalidValue,
		},
		{
			name:      "not pointer",
			v:         struct{}{},
			lookupEnv: func(_ string) (string, bool) { return "", false },
			wantErr:   envstruct.ErrInvalidValue,
		},
		{
			name:      "empty struct",
			v:         &struct{}{},
			lookupEnv: func(_ string) (string, bool) { return "", false },
			want:      &struct{}{},
		},
		{
			name: "missing env without default",
			v:    &config{},
			lookupEnv: func(_ string) (string, bool) {
				return "", false
			},
			wantErr: envstruct.ErrEnvNotSet,
		},
		{
			name: "defaults and values",
			v:    &config{},
			lookupEnv: func(key string) (string, bool) {
				if key == "CASEDESK_SQLITE_URL" {
					return ":memory:", true
				}
				return "", false
			},
			want: &config{
				Addr:      "localhost:4000",
				SqliteURL: ":memory:",
			},
		},
		{
			name: "env overrides default",
			v:    &config{},
			lookupEnv: func(key string) (string, bool) {
				switch key {
				case "CASEDESK_ADDR":
					return "localhost:0", true
				case "CASEDESK_SQLITE_URL":
					return "./casedesk.sqlite", true
				}
				return "", false
			},
			want: &config{
				Addr:      "localhost:0",
				SqliteURL: "./casedesk.sqlite",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envstruct.Populate(tt.v, tt.lookupEnv)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, tt.v)
		})
	}
}
