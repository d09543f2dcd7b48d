package main

import "github.com/windtools/gobem/cmd"

func main() {
	cmd.Execute()
}
