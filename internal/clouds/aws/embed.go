package internal_aws

import (
	_ "embed"
	"fmt"
)

// Default region list used when regions are not discovered through EC2.
//
//go:embed aws_data.yaml
var awsDataYAML []byte

func GetAWSData() ([]byte, error) {
	if len(awsDataYAML) == 0 {
		return nil, fmt.Errorf("embedded AWS data is empty")
	}
	return awsDataYAML, nil
}
