package githubapi

import "time"

const (
	// DefaultBaseURL is the public GitHub REST endpoint.
	DefaultBaseURL = "https://api.github.com"

	// DefaultTimeout bounds a single listing call so a slow API cannot hold a request.
	DefaultTimeout = 5 * time.Second

	// DefaultPerPage is how many repositories one listing asks for.
	DefaultPerPage = 12

	apiVersion = "2022-11-28"
)
