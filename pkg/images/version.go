package images

import "regexp"

// "Ubuntu Pro 18.04 LTS - 20210615"
var versionRegex = regexp.MustCompile(
	`^.*?(?P<release_version>\d{1,2}\.\d{1,2})` +
		`.*?(?P<serial>\d{8}(\.\d{1,2})?)`,
)

// ParseVersion extracts the release version and serial from a marketplace
// version string. Both are empty when the string does not match; callers
// treat an empty value as unknown.
func ParseVersion(version string) (release, serial string) {
	fields, ok := matchNamed(versionRegex, version)
	if !ok {
		return "", ""
	}
	return fields["release_version"], fields["serial"]
}
