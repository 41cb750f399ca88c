package main

import "github.com/eslsoft/mandarin-master/cmd"

func main() {
	cmd.Execute()
}
