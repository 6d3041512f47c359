package repository

import (
	"errors"

	"exam-service/internal/apperror"

	"go.mongodb.org/mongo-driver/mongo"
)

// storageErr folds driver errors into the service taxonomy: a missing
// document is NotFound, anything else is a storage failure with the
// operation named for the log line.
func storageErr(op string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperror.Wrap(apperror.KindNotFound, op, err)
	}
	return apperror.Wrap(apperror.KindStorage, op, err)
}
