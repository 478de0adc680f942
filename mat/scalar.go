package mat

import (
	"math"
	"math/cmplx"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Real is the set of element types with an ordering: integers and floats.
type Real interface {
	constraints.Integer | constraints.Float
}

// Scalar is the set of element types a Mat can hold.
type Scalar interface {
	Real | constraints.Complex
}

// toComplex widens any scalar to complex128.
// Built-in types take the type switch; named types fall back to reflection.
func toComplex[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case float32:
		return complex(float64(x), 0)
	case int:
		return complex(float64(x), 0)
	case int8:
		return complex(float64(x), 0)
	case int16:
		return complex(float64(x), 0)
	case int32:
		return complex(float64(x), 0)
	case int64:
		return complex(float64(x), 0)
	case uint:
		return complex(float64(x), 0)
	case uint8:
		return complex(float64(x), 0)
	case uint16:
		return complex(float64(x), 0)
	case uint32:
		return complex(float64(x), 0)
	case uint64:
		return complex(float64(x), 0)
	case uintptr:
		return complex(float64(x), 0)
	case complex64:
		return complex128(x)
	case complex128:
		return x
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return complex(float64(rv.Int()), 0)
	case rv.CanUint():
		return complex(float64(rv.Uint()), 0)
	case rv.CanFloat():
		return complex(rv.Float(), 0)
	default:
		return rv.Complex()
	}
}

// fromComplex narrows c into T. Real types drop the imaginary part and
// integer types truncate toward zero. Non-finite values converted to an
// integer type become zero.
func fromComplex[T Scalar](c complex128) T {
	var z T
	switch p := any(&z).(type) {
	case *float64:
		*p = real(c)
	case *float32:
		*p = float32(real(c))
	case *complex128:
		*p = c
	case *complex64:
		*p = complex64(c)
	case *int:
		*p = int(truncInt(real(c)))
	case *int8:
		*p = int8(truncInt(real(c)))
	case *int16:
		*p = int16(truncInt(real(c)))
	case *int32:
		*p = int32(truncInt(real(c)))
	case *int64:
		*p = truncInt(real(c))
	case *uint:
		*p = uint(truncInt(real(c)))
	case *uint8:
		*p = uint8(truncInt(real(c)))
	case *uint16:
		*p = uint16(truncInt(real(c)))
	case *uint32:
		*p = uint32(truncInt(real(c)))
	case *uint64:
		*p = uint64(truncInt(real(c)))
	case *uintptr:
		*p = uintptr(truncInt(real(c)))
	default:
		rv := reflect.ValueOf(&z).Elem()
		switch {
		case rv.CanInt():
			rv.SetInt(truncInt(real(c)))
		case rv.CanUint():
			rv.SetUint(uint64(truncInt(real(c))))
		case rv.CanFloat():
			rv.SetFloat(real(c))
		default:
			rv.SetComplex(c)
		}
	}
	return z
}

func truncInt(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}

func isComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	}
	return reflect.TypeOf(z).Kind() == reflect.Complex64 ||
		reflect.TypeOf(z).Kind() == reflect.Complex128
}

func conj[T Scalar](v T) T {
	return fromComplex[T](cmplx.Conj(toComplex(v)))
}

func abs2[T Scalar](v T) float64 {
	c := toComplex(v)
	return real(c)*real(c) + imag(c)*imag(c)
}
