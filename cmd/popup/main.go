// Package main provides the CLI entrypoint for popup.
package main

func main() {
	Execute()
}
