/*
Package errors provides semantic error types for the TypeResolve library.

Two error kinds cover the whole library. Configuration errors are raised while
hierarchies are declared and registered; they represent programmer or setup
mistakes and always identify the offending type names. Resolution errors are
raised while resolving a concrete type for a value at decode time; they
represent malformed or unexpected input data.

Common Errors:

	var (
	    ErrConfiguration = errors.New("invalid hierarchy configuration")
	    ErrResolution    = errors.New("unable to resolve concrete type")
	    ErrNoBinding     = errors.New("no Go type bound for descriptor")
	)

Usage:

	concrete, err := reg.Resolve(declared, value)
	if err != nil {
	    if errors.IsResolution(err) {
	        // Bad input data: reject the record.
	        return fmt.Errorf("cannot decode %s: %w", declared.Name(), err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewInvalidChildError("PlayerEvent", "OrderEvent")
	err := errors.NewUnknownDiscriminatorError("Event", "bogus")

The error types implement the error interface and support wrapping, making
them compatible with Go's standard error handling patterns. No error is
retried or defaulted internally; every failure surfaces to the caller.
*/
package errors
