// Command caesar encrypts, decrypts and cracks Caesar ciphers, and serves the
// same operations over HTTP.
package main

import (
	"fmt"
	"io"
	"os"
)

const usage = `caesar: Caesar cipher tool

Usage:
  caesar encrypt    -key N [-text S]
  caesar decrypt    -key N [-text S]
  caesar crack      -crib S | [-threshold F] [-words FILE] [-text S]
  caesar candidates [-top N] [-text S]
  caesar serve      [-addr HOST:PORT]

Text is read from standard input when -text is not given.
Configuration is read from the environment and an optional .env file.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	switch args[0] {
	case "encrypt":
		return runShift(args[1:], stdin, stdout, stderr, true)
	case "decrypt":
		return runShift(args[1:], stdin, stdout, stderr, false)
	case "crack":
		return runCrack(args[1:], stdin, stdout, stderr)
	case "candidates":
		return runCandidates(args[1:], stdin, stdout, stderr)
	case "serve":
		return runServe(args[1:], stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n%s", args[0], usage)
		return 2
	}
}
