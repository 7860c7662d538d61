package images

import "github.com/bacalhau-project/amiaudit/pkg/models"

const (
	// CanonicalOwnerID is Canonical's AWS account ID.
	CanonicalOwnerID = "099720109477"
	// AWSUbuntuProOwnerAlias is the owner alias of the AMIs behind Ubuntu Pro listings.
	AWSUbuntuProOwnerAlias = "aws-marketplace"
	// AWSDeepLearningOwnerAlias is the owner alias of Amazon's Deep Learning and SQL Server Ubuntu AMIs.
	AWSDeepLearningOwnerAlias = "amazon"
)

// Identity holds the well-known owner identifiers used to classify images.
type Identity struct {
	CanonicalOwnerID          string `yaml:"canonical_owner_id"`
	AWSUbuntuProOwnerAlias    string `yaml:"ubuntu_pro_owner_alias"`
	AWSDeepLearningOwnerAlias string `yaml:"deep_learning_owner_alias"`
}

func DefaultIdentity() Identity {
	return Identity{
		CanonicalOwnerID:          CanonicalOwnerID,
		AWSUbuntuProOwnerAlias:    AWSUbuntuProOwnerAlias,
		AWSDeepLearningOwnerAlias: AWSDeepLearningOwnerAlias,
	}
}

// Classifier resolves the owner of an image from its owner alias or account ID.
type Classifier struct {
	identity Identity
}

func NewClassifier(identity Identity) *Classifier {
	return &Classifier{identity: identity}
}

// Classify checks the owner against the known identities in priority order.
// Anything else is OwnerUnknown and should be dropped by the caller.
func (c *Classifier) Classify(ownerAliasOrID string) models.Owner {
	switch {
	case ownerAliasOrID == "":
		return models.OwnerUnknown
	case ownerAliasOrID == c.identity.CanonicalOwnerID:
		return models.OwnerCanonical
	case ownerAliasOrID == c.identity.AWSUbuntuProOwnerAlias:
		return models.OwnerAWSUbuntuPro
	case ownerAliasOrID == c.identity.AWSDeepLearningOwnerAlias:
		return models.OwnerAWSDeepLearning
	default:
		return models.OwnerUnknown
	}
}

// OwnerField picks the value EC2 reports as the image owner: the alias when
// one is set, otherwise the account ID.
func OwnerField(alias, ownerID string) string {
	if alias != "" {
		return alias
	}
	return ownerID
}
