package unipalette_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-unipalette"
)

// Example demonstrates generating a plain-text palette of line and
// paragraph separators.
func Example() {
	opts := unipalette.DefaultOptions()
	opts.Categories = []string{"Zl", "Zp"}

	result, err := unipalette.Generate(context.Background(), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.URL)
	fmt.Println(result.Matched)
	// Output:
	// data:text/plain;charset=UTF-8;base64,4oCo4oCL4oCp
	// 2
}

// Example_html demonstrates an HTML palette with visible names.
func Example_html() {
	opts := unipalette.Options{
		Categories:   []string{"Zl"},
		AddName:      true,
		HTML:         true,
		NameFontSize: "8px",
	}

	result, err := unipalette.Generate(context.Background(), opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.HasPrefix(result.URL, "data:text/html;charset=UTF-8;"))
	fmt.Println(strings.Contains(result.Document, "<span class='n'>Line Separator</span>"))
	// Output:
	// true
	// true
}

// ExampleDecode demonstrates recovering the document from a URL.
func ExampleDecode() {
	payload, err := unipalette.Decode("data:text/plain;charset=UTF-8;%E2%98%BA")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(payload.MIMEType, payload.Document)
	// Output: text/plain ☺
}
