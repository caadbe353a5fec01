package service

import "strings"

// splitJoined flattens an errors.Join aggregate into one message per
// underlying error.
func splitJoined(err error) []string {
	if err == nil {
		return nil
	}
	return strings.Split(err.Error(), "\n")
}
