// Command seoimg annotates image folders with SEO titles and alt text
// and renames the files to match.
package main

import (
	"fmt"
	"os"

	"github.com/basecoat/seoimg/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "seoimg: %v\n", err)
		os.Exit(1)
	}
}
