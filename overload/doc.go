// Package overload provides runtime multiple dispatch for Go functions.
//
// Several differently-shaped implementations share one entry point, and the
// implementation to run is picked per call from the arguments actually
// supplied: how many there are, whether they were passed by position or by
// name, and the type tag of each value.
//
// # How does it work?
//
// Each implementation is registered as a Candidate together with a
// hand-written list of ParameterSpecs describing its signature. There is no
// reflection over function values; the ParameterSpec list is the signature.
//
// On every call the resolver walks the arguments once. Positional arguments
// are matched first, then named arguments in call order. Every candidate keeps
// its own cursor into its parameter list, and a candidate that cannot accept
// the current argument is eliminated for the rest of the call. The first
// surviving candidate in declaration order wins. When nothing survives the
// fallback runs with the original arguments.
//
// There is no scoring: declaration order is the only tie-break.
//
// # Concurrency
//
// A Dispatcher is immutable once Register returns. Calls allocate their own
// resolution state, so a Dispatcher may be shared by any number of goroutines.
//
// Example:
//
//	d, err := overload.Register(
//	    []overload.Candidate{
//	        {Name: "str", Impl: onString, Params: []overload.ParameterSpec{overload.Param("a").Of(overload.TagString)}},
//	        {Name: "int", Impl: onInt, Params: []overload.ParameterSpec{overload.Param("a").Of(overload.TagInt)}},
//	    },
//	    onAnythingElse,
//	)
//	if err != nil {
//	    return err
//	}
//	res, err := d.Invoke(5) // runs onInt
package overload
