package main

import (
	"fmt"
	"os"

	"github.com/jesseduffield/lazysnapper/pkg/cheatsheet"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Please provide a command: one of 'generate', 'check'")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		cheatsheet.Generate()
		fmt.Printf("\nGenerated cheatsheets in %s\n", cheatsheet.GetKeybindingsDir())
	case "check":
		cheatsheet.Check()
	default:
		fmt.Printf("\nUnknown command: '%s'\n", os.Args[1])
		os.Exit(1)
	}
}
