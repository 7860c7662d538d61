package awsprovider

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	aws_interface "github.com/bacalhau-project/amiaudit/pkg/models/interfaces/aws"
)

// LiveEC2Client implements the EC2Clienter interface
type LiveEC2Client struct {
	client *ec2.Client
}

var _ aws_interface.EC2Clienter = &LiveEC2Client{}

// NewEC2ClientWrapper wraps an ec2.Client
func NewEC2ClientWrapper(client *ec2.Client) aws_interface.EC2Clienter {
	return &LiveEC2Client{client: client}
}

func (c *LiveEC2Client) DescribeImages(
	ctx context.Context,
	params *ec2.DescribeImagesInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeImagesOutput, error) {
	return c.client.DescribeImages(ctx, params, optFns...)
}

func (c *LiveEC2Client) DescribeRegions(
	ctx context.Context,
	params *ec2.DescribeRegionsInput,
	optFns ...func(*ec2.Options),
) (*ec2.DescribeRegionsOutput, error) {
	return c.client.DescribeRegions(ctx, params, optFns...)
}
