package services

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map them with errors.Is: validation and conflict to
// 400, not found to 404, everything else to 500.
var (
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)

var (
	ErrLandmarkNotFound      = fmt.Errorf("%w: landmark", ErrNotFound)
	ErrUserNotFound          = fmt.Errorf("%w: user", ErrNotFound)
	ErrImageNotFound         = fmt.Errorf("%w: image", ErrNotFound)
	ErrUserFieldsRequired    = fmt.Errorf("%w: username and email required", ErrValidation)
	ErrVisitFieldsRequired   = fmt.Errorf("%w: user_id and landmark_id required", ErrValidation)
	ErrInvalidVisitReference = fmt.Errorf("%w: user_id and landmark_id must be valid ids", ErrValidation)
	ErrEmailExists           = fmt.Errorf("%w: email exists", ErrConflict)
)
