// Command drydock orchestrates release builds of desktop applications:
// native compile, binary rename, bundling and updater-artifact signing.
package main

import "github.com/drydock-build/drydock/cmd/drydock/cmd"

func main() {
	cmd.Execute()
}
