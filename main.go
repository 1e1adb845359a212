package main

import "github.com/crossworlds/sockprobe/cmd"

func main() {
	cmd.Execute()
}
