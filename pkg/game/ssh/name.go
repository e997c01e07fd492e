package ssh

import (
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNameLength = 16

var nameRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-]+`)

// PlayerName turns an SSH user name into a display name. Users without a
// usable name get a generated one.
func PlayerName(user string) string {
	name := nameRegexp.ReplaceAllString(user, "")
	if len(name) > MaxNameLength {
		name = name[:MaxNameLength]
	}

	if name == "" {
		return petname.Generate(2, "-")
	}

	return name
}
