package asset

import "errors"

var (
	ErrAssetNotFound   = errors.New("asset not found")
	ErrAlreadyAssigned = errors.New("asset is already assigned")
	ErrNotAssigned     = errors.New("asset is not assigned")
)
