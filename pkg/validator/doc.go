// Package validator adapts the rut core into declarative, form-friendly
// validation rules.
//
// Each exported helper constructs a Rule value pairing a boolean Check
// function with a field-scoped ValidationError. Rules are evaluated with
// Apply, which aggregates failures into a ValidationErrors slice satisfying
// the error interface, so several field problems can travel in one error
// return.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidRUT("tax_id", input.TaxID),
//	    validator.RUTEquals("confirm_tax_id", input.ConfirmTaxID, input.TaxID),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // render verrs.Get("tax_id") next to the form field
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface and works with errors.As;
// individual field messages are inspected with Has, Get and Fields. The
// rules themselves never return errors; a failed check simply contributes
// its ValidationError to the aggregate.
//
// The package holds no state of its own and is safe for concurrent use.
package validator
