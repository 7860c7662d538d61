package awsprovider

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2_types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"github.com/bacalhau-project/amiaudit/pkg/models"
)

// MaxImageIDsPerRequest caps the image-id filter values sent in one call.
const MaxImageIDsPerRequest = 200

// DescribeImages returns the owner and name of each AMI in the region, keyed
// by AMI ID. IDs EC2 does not know about are absent from the result.
func (p *AWSProvider) DescribeImages(
	ctx context.Context,
	region string,
	imageIDs []string,
) (map[string]models.ImageDetail, error) {
	l := logger.Get()
	client := p.GetEC2Client(region)
	details := make(map[string]models.ImageDetail, len(imageIDs))

	for start := 0; start < len(imageIDs); start += MaxImageIDsPerRequest {
		end := min(start+MaxImageIDsPerRequest, len(imageIDs))
		l.Debugf("%s - Querying ami details for %d AMIs", region, end-start)

		paginator := ec2.NewDescribeImagesPaginator(client, &ec2.DescribeImagesInput{
			Filters: []ec2_types.Filter{
				{
					Name:   aws.String("image-id"),
					Values: imageIDs[start:end],
				},
			},
		})
		for paginator.HasMorePages() {
			page, err := paginator.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to describe images in %s: %w", region, err)
			}
			for _, image := range page.Images {
				id := aws.ToString(image.ImageId)
				details[id] = models.ImageDetail{
					ImageID:    id,
					OwnerAlias: aws.ToString(image.ImageOwnerAlias),
					OwnerID:    aws.ToString(image.OwnerId),
					Name:       aws.ToString(image.Name),
				}
			}
		}
	}

	return details, nil
}
