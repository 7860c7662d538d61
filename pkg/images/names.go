package images

import (
	"regexp"

	"github.com/bacalhau-project/amiaudit/pkg/models"
)

var (
	// ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223
	canonicalNameRegex = regexp.MustCompile(
		`^ubuntu/images(-(?P<imgtype_path>[\w-]+))?/` +
			`((?P<virt_storage>\w+(-\w+)?)/)?` +
			`ubuntu-(?P<suite>\w+)-` +
			`((?P<release_version>\d\d\.\d\d)-)?` +
			`((?P<upload_type>\w+)-)?` +
			`(?P<arch>\w+)-server-` +
			`(?P<serial>\d+(\.\d{1,2})?)` +
			`(-(?P<custom>\w+))?`,
	)

	// trusty-ua-tools-20191128-d984c693-feaa-4be0-bc34-2099410bc9cc-ami-075ab031d5a3404c6.4
	ubuntuProNameRegex = regexp.MustCompile(
		`^.*?` +
			`(?P<serial>\d+(\.\d{1,2})?)` +
			`-.*?-` +
			`(?P<source_ami>ami-\w+)`,
	)

	// ubuntu-xenial-16.04-amd64-server-20190212-SQL_2017_Standard-2019.04.02
	deepLearningNameRegex = regexp.MustCompile(
		`^ubuntu-(?P<suite>\w+)-` +
			`((?P<release_version>\d\d\.\d\d)-)?` +
			`(?P<arch>\w+)-server-` +
			`(?P<serial>\d+(\.\d{1,2})?)` +
			`-`,
	)
)

// nameGrammar returns the grammar used for an owner, or nil when the owner has none.
func nameGrammar(owner models.Owner) *regexp.Regexp {
	switch owner {
	case models.OwnerCanonical:
		return canonicalNameRegex
	case models.OwnerAWSUbuntuPro:
		return ubuntuProNameRegex
	case models.OwnerAWSDeepLearning:
		return deepLearningNameRegex
	default:
		return nil
	}
}

// ParseName extracts the named fields of an image name using the grammar of
// its owner. The grammar is anchored at the start of the name but need not
// consume all of it. There is no fallback to another owner's grammar; a name
// that does not match returns false.
func ParseName(owner models.Owner, name string) (models.ParsedFields, bool) {
	re := nameGrammar(owner)
	if re == nil {
		return nil, false
	}
	return matchNamed(re, name)
}

// matchNamed returns the named groups that took part in the match. Groups
// that did not participate are left out of the result.
func matchNamed(re *regexp.Regexp, s string) (models.ParsedFields, bool) {
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, false
	}
	fields := models.ParsedFields{}
	for i, name := range re.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		fields[name] = s[loc[2*i]:loc[2*i+1]]
	}
	return fields, true
}
