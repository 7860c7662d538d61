package internal_aws

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bacalhau-project/amiaudit/pkg/logger"
	"gopkg.in/yaml.v2"
)

type AWSData struct {
	Regions []string `yaml:"regions"`
}

func getSortedAWSData() (*AWSData, error) {
	data, err := GetAWSData()
	if err != nil {
		return nil, err
	}

	var awsData AWSData
	if err := yaml.Unmarshal(data, &awsData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal AWS data: %w", err)
	}
	sort.Strings(awsData.Regions)
	return &awsData, nil
}

func IsValidAWSRegion(region string) bool {
	l := logger.Get()
	awsData, err := getSortedAWSData()
	if err != nil {
		l.Warnf("Failed to get sorted AWS data: %v", err)
		return false
	}

	for _, r := range awsData.Regions {
		if strings.EqualFold(r, region) {
			return true
		}
	}

	l.Warnf("Invalid AWS region: %s", region)
	return false
}

// GetAllAWSRegions returns the embedded region list, sorted.
func GetAllAWSRegions() ([]string, error) {
	awsData, err := getSortedAWSData()
	if err != nil {
		return nil, err
	}
	return awsData.Regions, nil
}

// FilterRegions keeps the regions named in only, preserving sorted order.
// An empty filter keeps every region; unknown names are returned separately.
func FilterRegions(regions, only []string) ([]string, []string) {
	if len(only) == 0 {
		return regions, nil
	}
	wanted := make(map[string]bool, len(only))
	for _, r := range only {
		wanted[strings.ToLower(strings.TrimSpace(r))] = true
	}

	var kept []string
	for _, r := range regions {
		if wanted[r] {
			kept = append(kept, r)
			delete(wanted, r)
		}
	}
	var unknown []string
	for r := range wanted {
		if r != "" {
			unknown = append(unknown, r)
		}
	}
	sort.Strings(unknown)
	return kept, unknown
}
