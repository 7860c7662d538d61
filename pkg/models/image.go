package models

import "fmt"

// Owner is the resolved publisher category of an image.
type Owner string

const (
	OwnerUnknown         Owner = ""
	OwnerCanonical       Owner = "Canonical"
	OwnerAWSUbuntuPro    Owner = "AWSUbuntuPro"
	OwnerAWSDeepLearning Owner = "AWSDeepLearning"
)

func (o Owner) String() string {
	if o == OwnerUnknown {
		return "unknown"
	}
	return string(o)
}

// Architectures advertised by quickstart listings.
const (
	ArchAMD64 = "amd64"
	ArchARM64 = "arm64"
)

// Keys populated by the name grammars. Which keys are present depends on the
// owner grammar that matched.
const (
	FieldImageTypePath  = "imgtype_path"
	FieldVirtStorage    = "virt_storage"
	FieldSuite          = "suite"
	FieldReleaseVersion = "release_version"
	FieldUploadType     = "upload_type"
	FieldArch           = "arch"
	FieldSerial         = "serial"
	FieldCustom         = "custom"
	FieldSourceAMI      = "source_ami"
)

// ParsedFields holds the named captures of a name grammar. Optional groups
// that did not participate in the match are absent rather than empty.
type ParsedFields map[string]string

// Get returns the value of key and whether the grammar captured it.
func (p ParsedFields) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	v, ok := p[key]
	return v, ok
}

// Value returns the captured value or an empty string.
func (p ParsedFields) Value(key string) string {
	v, _ := p.Get(key)
	return v
}

// RawImage is one observation delivered by an ingestion source, before any
// classification or parsing.
type RawImage struct {
	Region         string `json:"region"`
	QuickstartSlot int    `json:"quickstart_slot,omitempty"`
	ListingArch    string `json:"listing_arch"`
	ImageID        string `json:"ami_id"`
	OwnerAlias     string `json:"owner_alias"`
	Name           string `json:"name"`
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	Type           string `json:"type,omitempty"`
}

// ImageRecord is a classified and normalized image observation.
type ImageRecord struct {
	Region           string       `json:"region"`
	QuickstartSlot   int          `json:"quickstart_slot,omitempty"`
	ListingArch      string       `json:"listing_arch"`
	ImageID          string       `json:"ami_id"`
	OwnerAlias       string       `json:"owner_alias"`
	Name             string       `json:"name"`
	Title            string       `json:"title,omitempty"`
	Description      string       `json:"description,omitempty"`
	Type             string       `json:"type,omitempty"`
	Owner            Owner        `json:"owner"`
	Parsed           bool         `json:"parsed"`
	Fields           ParsedFields `json:"fields,omitempty"`
	UniqueIdentifier string       `json:"unique_identifier"`
}

// ReleaseVersion is the NN.NN release captured from the name, if any.
func (r ImageRecord) ReleaseVersion() string { return r.Fields.Value(FieldReleaseVersion) }

// Arch is the architecture captured from the name, if any.
func (r ImageRecord) Arch() string { return r.Fields.Value(FieldArch) }

// Serial is the build serial captured from the name, if any.
func (r ImageRecord) Serial() string { return r.Fields.Value(FieldSerial) }

// String renders the record the way the quickstart listing output shows it.
func (r ImageRecord) String() string {
	slot := ""
	if r.QuickstartSlot > 0 {
		slot = fmt.Sprintf("%d", r.QuickstartSlot)
	}
	return fmt.Sprintf(
		"%s %s\n\t%s %s %s %s %s \n\t\t(Slot: %s , Description: %s)",
		r.Title,
		r.ListingArch,
		r.ReleaseVersion(),
		r.Serial(),
		r.Arch(),
		r.ImageID,
		r.Owner,
		slot,
		r.Description,
	)
}

// RegionRecords is the ordered record set gathered for one region.
type RegionRecords struct {
	Region  string        `json:"region"`
	Records []ImageRecord `json:"records"`
}

// ImageDetail is the image metadata EC2 reports for an AMI ID.
type ImageDetail struct {
	ImageID    string
	OwnerAlias string
	OwnerID    string
	Name       string
}
