package service

import (
	"errors"

	"rent-a-shelf/internal/model"
)

// storeFault folds a repository fault into the store-unavailable sentinel
// so handlers answer 503 instead of a generic 500. Errors that already
// carry the sentinel pass through unchanged.
func storeFault(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, model.ErrStoreUnavailable) {
		return err
	}
	return errors.Join(model.ErrStoreUnavailable, err)
}
