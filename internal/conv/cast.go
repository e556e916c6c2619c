package conv

import (
	"fmt"
	"math"

	"github.com/hupe1980/succinct"
)

// IntToUint32 converts a bit position to a roaring member.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", succinct.ErrOutOfRange, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", succinct.ErrOutOfRange, v)
	}
	return uint32(v), nil
}

// UintToInt converts a bitset length or index to a bit position.
func UintToInt(v uint) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d cannot be converted to int (too large)", succinct.ErrOutOfRange, v)
	}
	return int(v), nil
}

// IntToUint converts a non-negative position to a bitset index.
func IntToUint(v int) (uint, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint (negative)", succinct.ErrOutOfRange, v)
	}
	return uint(v), nil
}
