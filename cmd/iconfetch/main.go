// Package main provides the iconfetch command: the favicon HTTP service
// and one-shot lookups from the shell.
//
// Usage:
//
//	iconfetch serve --config /etc/iconfetch/config.toml
//	iconfetch resolve example.com --larger -o icon.png
//
// See --help for all available options.
package main

func main() {
	Execute()
}
