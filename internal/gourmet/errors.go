package gourmet

import "fmt"

// FetchError reports a failed search call: a transport failure, a non-200
// status, an undecodable body, or an error envelope returned by the API.
type FetchError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("gourmet search: api error %s: %s", e.Code, e.Message)
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("gourmet search: status %d: %v", e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("gourmet search: %v", e.Err)
	default:
		return fmt.Sprintf("gourmet search: received non-200 status code: %d", e.StatusCode)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
