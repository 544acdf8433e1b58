package main

import "github.com/redactyl/globfind/cmd/globfind"

func main() { globfind.Execute() }
