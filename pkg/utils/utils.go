package utils

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
)

// ExpandPath resolves a leading ~ to the user's home directory. An empty path
// stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand path %s: %w", path, err)
	}
	return expanded, nil
}

// RemoveDuplicates keeps the first occurrence of each value, in order.
func RemoveDuplicates(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	result := make([]string, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			result = append(result, v)
		}
	}
	return result
}
