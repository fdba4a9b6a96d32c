package scaledec

import (
	"fmt"
)

func ExampleFactory() {
	usd, _ := NewFactory(2, HalfUp)
	price := usd.MustNew("19.99")
	qty := usd.MustNew("3")

	total, _ := price.Mul(qty)
	fmt.Println(total)

	withTax, _ := total.Mul(usd.MustNew("1.08"))
	fmt.Println(withTax)

	// Output:
	// 59.97
	// 64.76
}

func ExampleValue_Round() {
	ctx := MustContext(8, HalfUp)
	v := MustParse("123.456789", ctx)

	rounded, _ := v.Round(4, HalfUp)
	fmt.Println(rounded)

	s, _ := v.ToFixed(2, Down)
	fmt.Println(s)

	// Output:
	// 123.45680000
	// 123.45
}

func ExampleValue_Plus() {
	ctx := MustContext(8, HalfUp)

	// mantissas from an external feed are already scaled; integer
	// construction adopts them verbatim and Plus sums them without
	// context checks or scale correction.
	total := MustParse("0", ctx)
	for _, raw := range []int64{150000000, 25000000, 1} {
		total = total.Plus(MustNew(raw, ctx))
	}
	fmt.Println(total)

	// Output:
	// 1.75000001
}
