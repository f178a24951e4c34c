package main

import "github.com/SscSPs/mobilepos_backend/internal/cli"

func main() {
	cli.Execute()
}
