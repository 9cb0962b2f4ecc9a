package main

import "github.com/goatx/schemauml/cmd"

func main() {
	cmd.Execute()
}
