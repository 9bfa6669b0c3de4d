package main

import "github.com/mouse-blink/cstyle/cmd"

func main() {
	cmd.Execute()
}
