package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnString(t *testing.T) {
	tests := []struct {
		name   string
		params NewDBPoolParams
		want   string
	}{
		{
			name:   "no password",
			params: NewDBPoolParams{DBHost: "localhost", DBPort: "5432", DBName: "tracker"},
			want:   "postgres://postgres@localhost:5432/tracker",
		},
		{
			name:   "escaped password",
			params: NewDBPoolParams{DBHost: "db", DBPort: "5433", DBName: "tracker", DBPassword: "p@ss/word"},
			want:   "postgres://postgres:p%40ss%2Fword@db:5433/tracker",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConnString(tt.params)
			assert.Equal(t, tt.want, got)

			cfg, err := pgxpool.ParseConfig(got)
			require.NoError(t, err)
			assert.Equal(t, tt.params.DBName, cfg.ConnConfig.Database)
			assert.Equal(t, tt.params.DBPassword, cfg.ConnConfig.Password)
		})
	}
}
