package main

import "github.com/nfrund/scalemyorg/cmd/scalemyorg-cli/cmd"

func main() {
	cmd.Execute()
}
