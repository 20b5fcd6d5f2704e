package main

import "github.com/ArjunSarkar1/ClipsMaker/internal/cli"

func main() { cli.Main() }
