package mws

import "fmt"

// MissingCredentialError reports an empty access key id or secret access key.
type MissingCredentialError struct {
	Field string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("mws: missing credential %s", e.Field)
}

// MissingFieldError reports a required request field left empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("mws: missing required field %s", e.Field)
}

// InvalidPathError reports a URI path that does not begin with "/".
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("mws: uri path %q must begin with /", e.Path)
}

// InvalidParameterError reports a parameter whose value cannot be rendered
// as an MWS query parameter.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("mws: invalid parameter %s: %s", e.Name, e.Reason)
}
