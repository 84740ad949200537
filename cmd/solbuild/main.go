package main

import "solbuild/internal/cli"

func main() {
	cli.Execute()
}
