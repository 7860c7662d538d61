package testdata

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

const (
	FakeCanonicalOwnerID = "099720109477"

	FakeFocalAMD64AMI  = "ami-0focalamd64"
	FakeFocalARM64AMI  = "ami-0focalarm64"
	FakeBionicAMD64AMI = "ami-0bionicamd64"
	FakeProAMI         = "ami-0ubuntupro"
	FakeWindowsAMI     = "ami-0windows"
)

func FakeEC2DescribeImagesOutput() *ec2.DescribeImagesOutput {
	return &ec2.DescribeImagesOutput{
		Images: []types.Image{
			{
				ImageId: aws.String(FakeFocalAMD64AMI),
				OwnerId: aws.String(FakeCanonicalOwnerID),
				Name:    aws.String("ubuntu/images/hvm-ssd/ubuntu-focal-20.04-amd64-server-20210223"),
			},
			{
				ImageId: aws.String(FakeFocalARM64AMI),
				OwnerId: aws.String(FakeCanonicalOwnerID),
				Name:    aws.String("ubuntu/images/hvm-ssd/ubuntu-focal-20.04-arm64-server-20210223"),
			},
			{
				ImageId: aws.String(FakeBionicAMD64AMI),
				OwnerId: aws.String(FakeCanonicalOwnerID),
				Name:    aws.String("ubuntu/images/hvm-ssd/ubuntu-bionic-18.04-amd64-server-20210224"),
			},
			{
				ImageId:         aws.String(FakeProAMI),
				OwnerId:         aws.String("679593333241"),
				ImageOwnerAlias: aws.String("aws-marketplace"),
				Name: aws.String(
					"trusty-ua-tools-20191128-d984c693-feaa-4be0-bc34-2099410bc9cc-ami-075ab031d5a3404c6.4",
				),
			},
			{
				ImageId:         aws.String(FakeWindowsAMI),
				OwnerId:         aws.String("801119661308"),
				ImageOwnerAlias: aws.String("amazon-windows"),
				Name:            aws.String("Windows_Server-2019-English-Full-Base-2021.02.10"),
			},
		},
	}
}

func FakeEC2DescribeRegionsOutput() *ec2.DescribeRegionsOutput {
	return &ec2.DescribeRegionsOutput{
		Regions: []types.Region{
			{
				RegionName: aws.String("us-east-2"),
			},
			{
				RegionName: aws.String("us-east-1"),
			},
		},
	}
}
