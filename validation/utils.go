package validation

import (
	"cmp"
	"slices"

	"github.com/speakeasy-api/wes/errors"
)

// SortValidationErrors sorts the provided validation errors by line and column number lowest to highest.
// Errors that are not *Error keep their relative order after the validation errors.
func SortValidationErrors(allErrors []error) {
	if len(allErrors) == 0 {
		return
	}

	var validErrs []*Error
	var otherErrs []error
	for _, err := range allErrors {
		var vErr *Error
		if errors.As(err, &vErr) {
			validErrs = append(validErrs, vErr)
		} else {
			otherErrs = append(otherErrs, err)
		}
	}

	slices.SortStableFunc(validErrs, compareValidationErrors)

	idx := 0
	for _, vErr := range validErrs {
		allErrors[idx] = vErr
		idx++
	}
	for _, err := range otherErrs {
		allErrors[idx] = err
		idx++
	}
}

func compareValidationErrors(a, b *Error) int {
	return cmp.Or(
		cmp.Compare(a.GetLineNumber(), b.GetLineNumber()),
		cmp.Compare(a.GetColumnNumber(), b.GetColumnNumber()),
		cmp.Compare(a.Severity, b.Severity),
		cmp.Compare(a.Pointer, b.Pointer),
		cmp.Compare(a.Rule, b.Rule),
		cmp.Compare(a.Error(), b.Error()),
	)
}
