package teacher

import "errors"

var (
	ErrNotFound  = errors.New("teacher not found")
	ErrDuplicate = errors.New("a teacher with this Shalarth ID already exists")
)
