package mael_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aretw0/mael"
	"github.com/aretw0/mael/pkg/adapters/memory"
)

// ExampleNew_memory converts documents held in memory, without touching the file system.
func ExampleNew_memory() {
	source := memory.NewSource(map[string]string{
		"login.md": `# Login

## Summary
Sign in flow.

## Steps
### Action
open the page
### Expected
form is shown
---
### Action
submit
`,
	})

	conv, err := mael.New("", mael.WithSource(source))
	if err != nil {
		log.Fatal(err)
	}

	sheets, err := conv.Render(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, sheet := range sheets {
		fmt.Println(sheet.Title)
		fmt.Println(strings.Join(sheet.Columns, " | "))
		for _, row := range sheet.Rows {
			fmt.Println(strings.Join(row, " | "))
		}
	}
	// Output:
	// Login
	// Action | Expected
	// open the page | form is shown
	// submit | form is shown
}
