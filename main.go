package main

import "github.com/scrublish/scrublish/cmd"

func main() {
	cmd.Execute()
}
