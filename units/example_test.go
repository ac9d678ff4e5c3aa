package units_test

import (
	"fmt"

	"github.com/zephyrtronium/symbolic"
	"github.com/zephyrtronium/symbolic/units"
)

func Example() {
	d := units.New[symbolic.Float](96, "m").MustAdd(units.New[symbolic.Float](2, "m"))
	fmt.Println(d)
	fmt.Println(d.Div(units.New[symbolic.Float](10, "s")))

	// The same computation, kept symbolic.
	lit := symbolic.Lit[symbolic.Float]
	e := units.New(lit(96), "m").MustAdd(units.New(lit(2), "m"))
	fmt.Println(e.Div(units.New(lit(10), "s")))

	_, err := units.New[symbolic.Float](1, "m").Add(units.New[symbolic.Float](1, "s"))
	fmt.Println(err)

	// Output:
	// 98_m
	// 9.8_m/s
	// (96+2)/10_m/s
	// mismatched units in add: m vs s
}
