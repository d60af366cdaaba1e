package migration

import (
	"carebridge-service/internal/pkg/constvars"
	"fmt"
)

// FetchError means an entire resource type could not be pulled from the
// source. The type's count is reported as zero and the other types are
// unaffected.
type FetchError struct {
	ResourceType constvars.ResourceType
	Cause        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s failed: %v", e.ResourceType, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// WriteError aggregates the records of one resource type that failed to
// persist. Failed records are simply not counted; the rest of the type and
// all other types proceed.
type WriteError struct {
	ResourceType constvars.ResourceType
	FailedIDs    []string
	Cause        error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %d %s record(s) failed: %v", len(e.FailedIDs), e.ResourceType, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
