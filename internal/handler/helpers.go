package handler

import (
	pkgvalidator "github.com/greensteps/greensteps-api/pkg/validator"
)

func formatValidationError(err error) string {
	return pkgvalidator.FormatValidationError(err)
}
