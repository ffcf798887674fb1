package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrComplaintNotFound  = errors.New("complaint not found")
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrComplaintResolved  = errors.New("complaint is already resolved")
	ErrNotAssigned        = errors.New("complaint is not assigned to this worker")
	ErrAfterPhotoRequired = errors.New("an after-cleanup photo is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError lists the request fields that failed validation
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// UploadError wraps an object store failure
type UploadError struct {
	Key string
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Key, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
