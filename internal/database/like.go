package database

import "strings"

// likeEscaper escapes LIKE wildcards. Queries using the result declare
// ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE pattern matching values that contain
// search literally.
func ContainsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}
