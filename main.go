package main

import "github.com/comfykit/comfykit/cmd"

var version string

func main() {
	cmd.Execute(version)
}
