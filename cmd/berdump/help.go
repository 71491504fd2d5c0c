package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `berdump - inspect BER-encoded buffers

Usage:
  berdump <command> [options]

Commands:
  dump        Print a BER buffer's element tree
  script      Run a format-string script against a BER buffer
  version     Show version information

Use "berdump <command> -h" for more information about a command.
`)
}

// printDumpUsage prints the dump command usage.
func printDumpUsage(w io.Writer) {
	fmt.Fprint(w, `Print a BER buffer's element tree

Usage:
  berdump dump [options] <file|->

Reads a buffer from file, or from stdin if "-" or no file is given, and
walks it top to bottom printing each element's offset, class, tag
number, constructed bit, length, and (for primitives) its decoded
value.

Options:
  -hex
        Input is hex-encoded text (default: raw binary)
  -b64
        Input is base64-encoded text
  -h, -help
        Show this help message
`)
}

// printScriptUsage prints the script command usage.
func printScriptUsage(w io.Writer) {
	fmt.Fprint(w, `Run a format-string script against a BER buffer

Usage:
  berdump script -fmt <format> [options] <file|->

Interprets <format> as a sequence of single-character script opcodes
(b i e n l t T x a s O o B v V { } [ ]; any other character, including
whitespace, is rejected) and prints the value bound to each opcode's
output slot. The script runs atomically: if any
opcode fails, all prior allocations are rolled back and nothing is
printed.

Options:
  -fmt string
        Script opcode string (required)
  -hex
        Input is hex-encoded text (default: raw binary)
  -b64
        Input is base64-encoded text
  -h, -help
        Show this help message
`)
}

// printVersionUsage prints the version command usage.
func printVersionUsage(w io.Writer) {
	fmt.Fprint(w, `Show version information

Usage:
  berdump version [options]

Options:
  -short
        Show only version number
  -h, -help
        Show this help message
`)
}
