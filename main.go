package main

import "github.com/navagraha/jyotish/cmd"

func main() {
	cmd.Execute()
}
