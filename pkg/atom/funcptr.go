package atom

import "reflect"

// funcPointer returns the code pointer backing a function value, used to
// compare two function-typed fields for identity rather than value equality
// (functions are not otherwise comparable in Go). Grounded atom equality
// uses this to require the same Match/Execute hook, not just an equal
// pointer value by coincidence.
func funcPointer(f interface{}) uintptr {
	return reflect.ValueOf(f).Pointer()
}
