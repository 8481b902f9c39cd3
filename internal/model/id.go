package model

import "regexp"

var contentIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// MaxContentIDLen bounds team, project and article slugs.
const MaxContentIDLen = 128

// ValidContentID reports whether id is a lowercase slug such as "628-summit".
func ValidContentID(id string) bool {
	return len(id) <= MaxContentIDLen && contentIDPattern.MatchString(id)
}
