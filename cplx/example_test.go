package cplx_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cplane/cplx"
)

// ExampleNumber_Mul rotates 3−4i by a quarter turn and shifts it by one.
func ExampleNumber_Mul() {
	z := cplx.FromRealImag(3, -4)
	w := z.Mul(cplx.I()).Add(cplx.One())
	fmt.Println(z, z.Abs())
	fmt.Println(w)
	// Output:
	// 3-4i 5
	// 5+3i
}

// ExampleParse reads the canonical text form back.
func ExampleParse() {
	z := cplx.Parse("3-4i")
	fmt.Println(z.Real(), z.Imag())
	fmt.Println(z.Conj())
	fmt.Println(cplx.Parse("not a number"))
	// Output:
	// 3 -4
	// 3+4i
	// 0+0i
}

// ExampleNumber_Pow shows 2^4 and the principal fourth root of 16.
func ExampleNumber_Pow() {
	fmt.Printf("%.6f\n", cplx.FromReal(2).Pow(cplx.FromReal(4)))
	fmt.Printf("%.6f\n", cplx.FromReal(16).Root(cplx.FromReal(4)))
	// Output:
	// 16.000000+0.000000i
	// 2.000000+0.000000i
}

// ExampleEncode writes the structured RE/IM record.
func ExampleEncode() {
	_ = cplx.Encode(os.Stdout, cplx.FromRealImag(3, -4), cplx.EncodingJSON)
	// Output:
	// {"RE":3,"IM":-4}
}
