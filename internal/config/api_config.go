package config

import "strconv"

const (
	baseURLVar        = "TRACKER_API_URL"
	requestTimeoutVar = "REQUEST_TIMEOUT_SECONDS"
)

type API struct{}

var _ APIConfig = API{}

// GetBaseURL returns the root URL of the Employee Tracker backend
// (e.g. "https://tracker.example.com"). The gateway client appends /api.
func (API) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8000")
}

func (API) GetRequestTimeoutSeconds() int {
	value := GetEnv(requestTimeoutVar, "10")
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return 10
	}
	return seconds
}
