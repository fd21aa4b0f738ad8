package ireno

import "errors"

var (
	// ErrAPIStatus indicates a non-2xx response from an IRENO API.
	ErrAPIStatus = errors.New("ireno api error")

	// ErrBadResponse indicates an IRENO API response that could not be decoded.
	ErrBadResponse = errors.New("undecodable ireno api response")

	// ErrUnknownTool indicates a tool-call dispatch for a name the catalog
	// does not contain.
	ErrUnknownTool = errors.New("unknown tool")
)
