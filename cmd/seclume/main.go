// Command seclume packs, unpacks, lists, and inspects password-protected
// .slm archives.
package main

import "github.com/kUrOSH1R0oo/Seclume-Linux/internal/cli"

func main() {
	cli.Execute()
}
