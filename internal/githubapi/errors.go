package githubapi

import "fmt"

type ErrorKind int

const (
	KindNetwork ErrorKind = iota + 1
	KindStatus
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError describes why a listing call produced no repositories.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("github: unexpected status %d", e.StatusCode)
	default:
		return fmt.Sprintf("github: %s error: %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }
