package database_test

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/database/pgdb"
	"shortlink/internal/database/sqlitedb"
)

var queryName = regexp.MustCompile(`(?m)^-- name: (\w+) :\w+$`)

func TestQueryPackages_CoverEveryNamedQuery(t *testing.T) {
	tests := []struct {
		dir     string
		queries any
	}{
		{dir: "queries/sqlite", queries: sqlitedb.New(nil)},
		{dir: "queries/postgres", queries: pgdb.New(nil)},
	}
	for _, tc := range tests {
		t.Run(tc.dir, func(t *testing.T) {
			// Setup
			files, err := filepath.Glob(filepath.Join(tc.dir, "*.sql"))
			require.NoError(t, err)
			require.NotEmpty(t, files)
			typ := reflect.TypeOf(tc.queries)

			for _, file := range files {
				body, err := os.ReadFile(file)
				require.NoError(t, err)

				// Act
				matches := queryName.FindAllStringSubmatch(string(body), -1)

				// Assert
				require.NotEmpty(t, matches, file)
				for _, m := range matches {
					_, ok := typ.MethodByName(m[1])
					assert.True(t, ok, "%s: %s has no method on %s", file, m[1], typ)
				}
			}
		})
	}
}
