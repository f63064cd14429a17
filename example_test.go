// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

package alter_test

import (
	"fmt"

	alter "github.com/elkhaliff/Alter-Converter"
)

func ExampleConvert() {
	root, err := alter.Convert(`<greeting lang="en">hello</greeting>`)
	if err != nil {
		fmt.Println("convert:", err)
		return
	}
	fmt.Print(root)
	// Output:
	// Element:
	// path = greeting
	// value = "hello"
	// attributes:
	// lang = "en"
}

func ExampleConvert_object() {
	root, err := alter.Convert(`{"greeting": {"@lang": "en", "#greeting": "hello"}}`)
	if err != nil {
		fmt.Println("convert:", err)
		return
	}
	fmt.Print(root)
	// Output:
	// Element:
	// path = greeting
	// value = "hello"
	// attributes:
	// lang = "en"
}
