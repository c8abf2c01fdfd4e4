package main

import "github.com/black-desk/fsdetect/cmd/fsdetect/cmd"

func main() {
	cmd.Execute()
}
