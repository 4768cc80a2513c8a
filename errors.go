package u512

import "fmt"

// ErrDivideByZero is returned by DivSmall and Div when the divisor is
// zero. Both output buffers are zeroed before it is returned.
var ErrDivideByZero = fmt.Errorf("u512: division by zero")
