// Package main is the entry point for the request CLI.
package main

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitFn(1)
	}
}
