package cplx

// Complexify converts loosely typed host input into a Number.
//
//   - Number and *Number are returned as is (nil *Number is zero).
//   - Integer and floating-point kinds become real numbers.
//   - complex64 and complex128 keep both components.
//   - Strings go through Parse, so malformed text becomes zero.
//   - Anything else, nil and bool included, becomes zero.
func Complexify(v any) Number {
	switch x := v.(type) {
	case Number:
		return x
	case *Number:
		if x == nil {
			return Zero()
		}
		return *x
	case float64:
		return FromReal(x)
	case float32:
		return FromReal(float64(x))
	case int:
		return FromReal(float64(x))
	case int8:
		return FromReal(float64(x))
	case int16:
		return FromReal(float64(x))
	case int32:
		return FromReal(float64(x))
	case int64:
		return FromReal(float64(x))
	case uint:
		return FromReal(float64(x))
	case uint8:
		return FromReal(float64(x))
	case uint16:
		return FromReal(float64(x))
	case uint32:
		return FromReal(float64(x))
	case uint64:
		return FromReal(float64(x))
	case complex128:
		return FromComplex128(x)
	case complex64:
		return FromComplex128(complex128(x))
	case string:
		return Parse(x)
	default:
		return Zero()
	}
}
