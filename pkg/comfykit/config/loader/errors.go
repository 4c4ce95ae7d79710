package loader

import (
	"fmt"
	"strings"
)

// ConfigNotFoundError is returned when a config source cannot be located by
// any resolution strategy
type ConfigNotFoundError struct {
	Source string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("couldn't find config '%s': not a url, an existing file path or a known config name", e.Source)
}

// ParseError is returned when a config source was found but is not valid yaml
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing config %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CyclicInheritanceError is returned when a config declares itself as an
// ancestor through its parent chain
type CyclicInheritanceError struct {
	Chain []string
}

func (e *CyclicInheritanceError) Error() string {
	return "cyclic config inheritance found: \n" + strings.Join(e.Chain, "\n")
}
