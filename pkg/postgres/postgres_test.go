package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	cfg := DB{
		Host:     "db",
		Port:     "5433",
		Username: "library",
		Password: "p@ss",
		NameDB:   "locallibrary",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://library:p%40ss@db:5433/locallibrary?sslmode=disable", cfg.DSN())
}
