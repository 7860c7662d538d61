package awsprovider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// CanonicalParameterFormat is the public parameter Canonical keeps pointed at
// the current server AMI of a release and architecture.
const CanonicalParameterFormat = "/aws/service/canonical/ubuntu/server/%s/stable/current/%s/hvm/ebs-gp2/ami-id"

// SSMLookup resolves authoritative AMI IDs from Canonical's public SSM parameters.
type SSMLookup struct {
	provider *AWSProvider
}

func NewSSMLookup(provider *AWSProvider) *SSMLookup {
	return &SSMLookup{provider: provider}
}

func CanonicalParameterName(release, arch string) string {
	return fmt.Sprintf(CanonicalParameterFormat, release, arch)
}

// ImageID implements reconcile.ImageLookup.
func (s *SSMLookup) ImageID(ctx context.Context, region, release, arch string) (string, error) {
	name := CanonicalParameterName(release, arch)
	out, err := s.provider.GetSSMClient(region).GetParameter(ctx, &ssm.GetParameterInput{
		Name: aws.String(name),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get parameter %s in %s: %w", name, region, err)
	}
	if out.Parameter == nil || aws.ToString(out.Parameter.Value) == "" {
		return "", fmt.Errorf("parameter %s in %s has no value", name, region)
	}
	return aws.ToString(out.Parameter.Value), nil
}
