package render

import (
	"regexp"
	"strings"
)

// RelationInfoSuffix is appended to a resource name to form the record key
// holding that resource's relation data.
const RelationInfoSuffix = ".relationInfo"

// relationRegex matches `resource@path` and stops at span braces.
var relationRegex = regexp.MustCompile(`([^@}{]*)@([^@}{]*)`)

// RelationPath is the parsed form of a `resource@a.b.c` field reference.
type RelationPath struct {
	Resource string
	Segments []string
}

// Key returns the record key holding the resource's relation data.
func (p RelationPath) Key() string {
	return RelationInfoKey(p.Resource)
}

// RelationInfoKey returns the record key for resource's relation data.
func RelationInfoKey(resource string) string {
	return resource + RelationInfoSuffix
}

// ParseRelation splits a field key into resource and path segments. It
// returns false when key is not a relation reference. An empty path yields no
// segments.
func ParseRelation(key string) (RelationPath, bool) {
	m := relationRegex.FindStringSubmatch(key)
	if m == nil {
		return RelationPath{}, false
	}
	p := RelationPath{Resource: m[1]}
	if m[2] != "" {
		p.Segments = strings.Split(m[2], ".")
	}
	return p, true
}
