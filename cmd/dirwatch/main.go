package main

import "github.com/twinpane/dirwatch/cmd/dirwatch/cmd"

func main() {
	cmd.Execute()
}
