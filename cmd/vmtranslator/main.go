// Command vmtranslator translates VM programs into Hack assembly.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(execute())
}
