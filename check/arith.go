package check

import (
	"fmt"

	"fortio.org/safecast"
)

// OverflowError is raised (as a panic value) by MulChecked when a product
// does not fit into 32 bits. Runner.Run turns it into an error return.
type OverflowError struct {
	A, B int32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("arithmetic overflow: %d * %d does not fit into int32", e.A, e.B)
}

// MulChecked returns a·b. It panics with an *OverflowError instead of
// wrapping around if the product is not representable as int32.
func MulChecked(a, b int32) int32 {
	p, err := safecast.Conv[int32](int64(a) * int64(b))
	if err != nil {
		panic(&OverflowError{A: a, B: b})
	}
	return p
}

// abs32 returns |v|. v is widened from 16 bits, therefore |v| is always
// representable.
func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
