package main

import "github.com/Builder-Lawyers/text-corrector/cmd"

func main() {
	cmd.Init()
}
