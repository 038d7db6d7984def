package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord marks a record that failed validation at the fetch boundary.
var ErrInvalidRecord = errors.New("invalid catalog record")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateAll checks every record and reports the first failure with its index.
// Ids must be unique within the collection.
func ValidateAll[T any](kind string, records []T) error {
	for i := range records {
		if err := validate.Struct(records[i]); err != nil {
			return fmt.Errorf("%w: %s #%d: %s", ErrInvalidRecord, kind, i, describe(err))
		}
	}
	if err := validate.Var(records, "unique=ID"); err != nil {
		return fmt.Errorf("%w: %s: duplicate id", ErrInvalidRecord, kind)
	}
	return nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	return fmt.Sprintf("field %s failed %q", fe.Field(), fe.Tag())
}
