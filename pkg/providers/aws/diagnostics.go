package awsprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
)

// Diagnostics summarizes what the configured credentials can reach.
type Diagnostics struct {
	Account   string
	Arn       string
	UserID    string
	Region    string
	SSMAccess bool
	SSMError  error
}

// Diagnose checks the caller identity and that Canonical's public SSM
// parameters are readable.
func (p *AWSProvider) Diagnose(ctx context.Context) (*Diagnostics, error) {
	l := logger.Get()
	l.Info("=== AWS Configuration Diagnostics ===")

	identity, err := p.GetSTSClient().GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to get caller identity: %w", err)
	}

	d := &Diagnostics{
		Account: aws.ToString(identity.Account),
		Arn:     aws.ToString(identity.Arn),
		UserID:  aws.ToString(identity.UserId),
		Region:  p.Config.Region,
	}
	l.Infof("  Account: %s", maskString(d.Account))
	l.Infof("  ARN: %s", d.Arn)

	release := models.DefaultCatalog()[0].Release
	_, err = NewSSMLookup(p).ImageID(ctx, DefaultRegion, release, models.ArchAMD64)
	d.SSMAccess = err == nil
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && strings.Contains(apiErr.ErrorCode(), "ParameterNotFound") {
			d.SSMAccess = true
		} else {
			d.SSMError = err
		}
	}
	l.Infof("  SSM Access: %v", d.SSMAccess)
	l.Info("=== End of AWS Configuration Diagnostics ===")

	return d, nil
}

// Helper function to mask sensitive strings
func maskString(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
