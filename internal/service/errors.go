package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSessionInvalid  = errors.New("session is missing, expired or unknown")
	ErrNotFound        = errors.New("resource not found")
	ErrVersionConflict = errors.New("row version is stale, reload and retry")
	ErrQuantityBounds  = errors.New("quantity outside allowed bounds")
	ErrRemovalExtra    = errors.New("removal extras carry no quantity")
	ErrEmptyBasket     = errors.New("basket is empty")
	ErrBranchNotFound  = errors.New("branch not found")
)

// ValidationError collects every failing checkout field so the client can
// surface them together instead of one at a time.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
