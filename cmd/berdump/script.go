package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/oba-ldap/lber/internal/ber"
)

// scriptCmd handles the script command: interpret a format string as a
// sequence of ber.Op values and run it against an input buffer.
func scriptCmd(args []string) int {
	fs := flag.NewFlagSet("script", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	format := fs.String("fmt", "", "Script opcode string")
	hexIn := fs.Bool("hex", false, "Input is hex-encoded text")
	b64In := fs.Bool("b64", false, "Input is base64-encoded text")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printScriptUsage(os.Stdout)
		return 0
	}

	if *format == "" {
		fmt.Fprintln(os.Stderr, "berdump script: -fmt is required")
		return 1
	}

	path := "-"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	buf, err := readInput(path, *hexIn, *b64In)
	if err != nil {
		fmt.Fprintf(os.Stderr, "berdump script: %v\n", err)
		return 1
	}

	slots, ops, err := compileScript(*format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "berdump script: %v\n", err)
		return 1
	}

	logger := newCLILogger()
	sink := newLoggingTraceSink(logger)
	cur := ber.NewCursor(buf, ber.WithTraceSink(sink), ber.WithAllocator(allocatorFor(loadCLIConfig())))

	if err := ber.Run(cur, ops...); err != nil {
		fmt.Fprintf(os.Stderr, "berdump script: %v\n", err)
		return 1
	}

	for _, s := range slots {
		fmt.Fprintln(os.Stdout, s.render())
	}
	return 0
}

// scriptSlot holds one opcode's bound output, named by its position in
// the format string so script output is reproducible and easy to grep.
type scriptSlot struct {
	opcode string
	index  int
	render func() string
}

// compileScript translates a script format string into a slice of bound
// output slots and the ber.Op sequence that fills them. This translation
// belongs to the CLI, not internal/ber, which by design only accepts an
// already-built []ber.Op (spec.md §9 rejects a format-string-plus-
// variadic-args API at the package boundary).
func compileScript(format string) ([]scriptSlot, []ber.Op, error) {
	var slots []scriptSlot
	var ops []ber.Op

	runes := []rune(format)
	for i, r := range runes {
		op := string(r)
		switch op {
		case "b":
			out := new(bool)
			ops = append(ops, ber.OpBoolean(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("b[%d] = %v", i, *out) }})
		case "i":
			out := new(int64)
			ops = append(ops, ber.OpInteger(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("i[%d] = %d", i, *out) }})
		case "e":
			out := new(int64)
			ops = append(ops, ber.OpEnumerated(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("e[%d] = %d", i, *out) }})
		case "n":
			ops = append(ops, ber.OpNull())
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("n[%d] = NULL", i) }})
		case "l":
			out := new(int)
			ops = append(ops, ber.OpLength(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("l[%d] = %d", i, *out) }})
		case "t":
			out := new(ber.Tag)
			ops = append(ops, ber.OpPeekTag(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("t[%d] = class=%s number=%d", i, out.Class(), out.Number()) }})
		case "T":
			out := new(ber.Tag)
			ops = append(ops, ber.OpSkipTag(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("T[%d] = class=%s number=%d", i, out.Class(), out.Number()) }})
		case "x":
			ops = append(ops, ber.OpSkipElement())
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("x[%d] = skipped", i) }})
		case "{":
			// OpArrayBytes/OpArrayBerval (v/V) enter their own
			// container via enterAnyAggregate, so a begin-container
			// opcode immediately preceding one must be omitted (see
			// OpBeginSequence's and OpArrayBytes's godoc in
			// internal/ber/script.go).
			if next := nextSignificantRune(runes, i+1); next != 'v' && next != 'V' {
				ops = append(ops, ber.OpBeginSequence())
			}
		case "[":
			if next := nextSignificantRune(runes, i+1); next != 'v' && next != 'V' {
				ops = append(ops, ber.OpBeginSet())
			}
		case "}", "]":
			ops = append(ops, ber.OpEndContainer())
		case "a":
			out := new([]byte)
			ops = append(ops, ber.OpOctetStringOwned(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("a[%d] = %q", i, trimNUL(*out)) }})
		case "s":
			dst := make([]byte, 4096)
			n := new(int)
			ops = append(ops, ber.OpOctetStringFixed(dst, n))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("s[%d] = %q", i, string(dst[:*n])) }})
		case "O":
			out := new(*ber.Berval)
			ops = append(ops, ber.OpBervalOwned(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("O[%d] = %q", i, bervalString(*out)) }})
		case "o":
			bv := new(ber.Berval)
			ops = append(ops, ber.OpBervalInto(bv))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("o[%d] = %q", i, bervalString(bv)) }})
		case "B":
			out := new([]byte)
			bits := new(int)
			ops = append(ops, ber.OpBitString(out, bits))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("B[%d] = %d bits %s", i, *bits, hex.EncodeToString(*out)) }})
		case "v":
			out := new([][]byte)
			ops = append(ops, ber.OpArrayBytes(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("v[%d] = %d elements", i, len(*out)) }})
		case "V":
			out := new([]*ber.Berval)
			ops = append(ops, ber.OpArrayBerval(out))
			slots = append(slots, scriptSlot{op, i, func() string { return fmt.Sprintf("V[%d] = %d elements", i, len(*out)) }})
		default:
			return nil, nil, fmt.Errorf("script: unrecognized opcode %q at position %d", op, i)
		}
	}

	return slots, ops, nil
}

// nextSignificantRune returns the first non-whitespace rune in runes at
// or after from, or 0 if none remains.
func nextSignificantRune(runes []rune, from int) rune {
	if from >= len(runes) {
		return 0
	}
	for _, r := range runes[from:] {
		if r == ' ' || r == '\t' || r == '\n' {
			continue
		}
		return r
	}
	return 0
}

func trimNUL(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}

func bervalString(bv *ber.Berval) string {
	if bv == nil {
		return ""
	}
	return trimNUL(bv.Value[:bv.Len])
}
