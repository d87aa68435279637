package validation

const (
	RuleValidationRequiredField = "validation-required-field"
	RuleValidationTypeMismatch  = "validation-type-mismatch"
	RuleValidationAllowedValues = "validation-allowed-values"
	RuleValidationInvalidSchema = "validation-invalid-schema"
)
