package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingEnv        = errors.New("missing environment variable")
	ErrUnknownNetwork    = errors.New("unknown network")
	ErrInvalidCredential = errors.New("invalid signing credential")
)

// MissingEnvError lists every required variable that was absent or empty
type MissingEnvError struct {
	Names []string
}

func (e *MissingEnvError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("%s: %s is not set", ErrMissingEnv, e.Names[0])
	}
	return fmt.Sprintf("%ss: %s are not set", ErrMissingEnv, strings.Join(e.Names, ", "))
}

func (e *MissingEnvError) Unwrap() error {
	return ErrMissingEnv
}

// UnknownNetworkError is returned when a network name has no profile
type UnknownNetworkError struct {
	Name string
}

func (e *UnknownNetworkError) Error() string {
	return fmt.Sprintf("%s '%s'", ErrUnknownNetwork, e.Name)
}

func (e *UnknownNetworkError) Unwrap() error {
	return ErrUnknownNetwork
}
