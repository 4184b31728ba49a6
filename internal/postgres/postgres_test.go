package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigString(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, "host=127.0.0.1 dbname=postgres port=5432 sslmode=prefer", Config{}.String())
	})
	t.Run("credentials", func(t *testing.T) {
		conf := Config{Host: "db", Port: "6543", User: "indexer", Password: "secret", DBName: "marketplace", SSLMode: "disable"}
		assert.Equal(t, "host=db dbname=marketplace port=6543 sslmode=disable user=indexer password=secret", conf.String())
	})
	t.Run("url", func(t *testing.T) {
		conf := Config{Host: "ignored", URL: "postgres://u:p@localhost:5432/db"}
		assert.Equal(t, "postgres://u:p@localhost:5432/db", conf.String())
	})
}
