package main

import "weles-ai/cmd"

func main() {
	cmd.Execute()
}
