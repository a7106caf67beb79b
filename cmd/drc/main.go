package main

import "github.com/Jimyzzp/LibrePCB/cmd/drc/cmd"

func main() {
	cmd.Execute()
}
