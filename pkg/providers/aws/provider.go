package awsprovider

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	aws_interface "github.com/bacalhau-project/amiaudit/pkg/models/interfaces/aws"
)

const (
	// DefaultRegion is used for calls that are not tied to an audited region.
	DefaultRegion = "us-east-1"
)

// ClientFactory builds regional AWS clients. Tests swap these out for mocks.
type ClientFactory struct {
	EC2 func(cfg aws.Config, region string) aws_interface.EC2Clienter
	SSM func(cfg aws.Config, region string) aws_interface.SSMClienter
	S3  func(cfg aws.Config, region string) aws_interface.S3Clienter
	STS func(cfg aws.Config) aws_interface.STSClienter
}

// LiveClientFactory returns a factory backed by the AWS SDK.
func LiveClientFactory() ClientFactory {
	return ClientFactory{
		EC2: func(cfg aws.Config, region string) aws_interface.EC2Clienter {
			return NewEC2ClientWrapper(ec2.NewFromConfig(cfg, func(o *ec2.Options) {
				o.Region = region
			}))
		},
		SSM: func(cfg aws.Config, region string) aws_interface.SSMClienter {
			return ssm.NewFromConfig(cfg, func(o *ssm.Options) {
				o.Region = region
			})
		},
		S3: func(cfg aws.Config, region string) aws_interface.S3Clienter {
			return s3.NewFromConfig(cfg, func(o *s3.Options) {
				o.Region = region
			})
		},
		STS: func(cfg aws.Config) aws_interface.STSClienter {
			return sts.NewFromConfig(cfg)
		},
	}
}

// AWSProvider hands out cached regional clients built from one AWS config.
type AWSProvider struct {
	Config  aws.Config
	factory ClientFactory

	mu         sync.Mutex
	ec2Clients map[string]aws_interface.EC2Clienter
	ssmClients map[string]aws_interface.SSMClienter
}

var NewAWSProviderFunc = NewAWSProvider

// NewAWSProvider loads the default AWS configuration, optionally for a named
// shared-config profile.
func NewAWSProvider(ctx context.Context, profile string) (*AWSProvider, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(DefaultRegion),
	}
	if profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return NewAWSProviderWithFactory(awsConfig, LiveClientFactory()), nil
}

// NewAWSProviderWithFactory builds a provider around an existing config.
func NewAWSProviderWithFactory(cfg aws.Config, factory ClientFactory) *AWSProvider {
	return &AWSProvider{
		Config:     cfg,
		factory:    factory,
		ec2Clients: make(map[string]aws_interface.EC2Clienter),
		ssmClients: make(map[string]aws_interface.SSMClienter),
	}
}

// GetEC2Client gets or creates an EC2 client for a specific region
func (p *AWSProvider) GetEC2Client(region string) aws_interface.EC2Clienter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.ec2Clients[region]; ok {
		return c
	}
	c := p.factory.EC2(p.Config, region)
	p.ec2Clients[region] = c
	return c
}

// GetSSMClient gets or creates an SSM client for a specific region
func (p *AWSProvider) GetSSMClient(region string) aws_interface.SSMClienter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.ssmClients[region]; ok {
		return c
	}
	c := p.factory.SSM(p.Config, region)
	p.ssmClients[region] = c
	return c
}

func (p *AWSProvider) GetS3Client(region string) aws_interface.S3Clienter {
	return p.factory.S3(p.Config, region)
}

func (p *AWSProvider) GetSTSClient() aws_interface.STSClienter {
	return p.factory.STS(p.Config)
}
