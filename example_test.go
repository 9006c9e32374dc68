package rex_test

import (
	"fmt"

	"github.com/coregx/rex"
	"github.com/coregx/rex/format"
)

func ExampleCompile() {
	re, err := rex.Compile(`\d+`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, ok := re.Find([]byte("order 42 shipped"), 0)
	if !ok {
		fmt.Println("no match")
		return
	}
	fmt.Println(m.Value())
	// Output: 42
}

func ExampleMustCompile() {
	re := rex.MustCompile(`(\w+)@(\w+)\.(\w+)`)
	m, ok := re.Find([]byte("contact user@example.com for help"), 0)
	if !ok {
		fmt.Println("no match")
		return
	}
	fmt.Println(m.Value())
	fmt.Println(m.Group(1).Captures[0].Value)
	fmt.Println(m.Group(2).Captures[0].Value)
	// Output:
	// user@example.com
	// user
	// example
}

func ExamplePattern_FindAll() {
	re := rex.MustCompile(`\d+`)
	for _, m := range re.FindAll([]byte("a1 b22 c333"), 0) {
		fmt.Println(m.Value())
	}
	// Output:
	// 1
	// 22
	// 333
}

func Example_substitution() {
	re := rex.MustCompile(`(\w+)-(\w+)`)
	m, _ := re.Find([]byte("foo-bar"), 0)

	tpl, err := format.Compile("<2> then <1>")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tpl.Render(m))
	// Output: bar then foo
}
