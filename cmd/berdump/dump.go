package main

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oba-ldap/lber/internal/ber"
	"github.com/oba-ldap/lber/internal/config"
	"github.com/oba-ldap/lber/internal/logging"
)

// dumpCmd handles the dump command: decode a BER buffer and print its
// element tree.
func dumpCmd(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	hexIn := fs.Bool("hex", false, "Input is hex-encoded text")
	b64In := fs.Bool("b64", false, "Input is base64-encoded text")
	help := fs.Bool("h", false, "Show help message")
	helpLong := fs.Bool("help", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *help || *helpLong {
		printDumpUsage(os.Stdout)
		return 0
	}

	path := "-"
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	buf, err := readInput(path, *hexIn, *b64In)
	if err != nil {
		fmt.Fprintf(os.Stderr, "berdump dump: %v\n", err)
		return 1
	}

	logger := newCLILogger()
	sink := newLoggingTraceSink(logger)
	cur := ber.NewCursor(buf, ber.WithTraceSink(sink), ber.WithAllocator(allocatorFor(loadCLIConfig())))

	if err := dumpElements(os.Stdout, cur, 0, cur.Len()); err != nil {
		fmt.Fprintf(os.Stderr, "berdump dump: %v\n", err)
		return 1
	}
	return 0
}

// dumpElements walks every top-level element between the cursor's current
// offset and end, printing each as a line indented by depth.
func dumpElements(w io.Writer, c *ber.Cursor, depth, end int) error {
	for c.Offset() < end {
		start := c.Offset()
		tag, length, err := c.PeekTag()
		if err != nil {
			return err
		}

		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(w, "%s[offset=%d] class=%s tag=%d constructed=%v length=%d",
			indent, start, tag.Class(), tag.Number(), tag.Constructed(), length)

		if tag.Constructed() {
			fmt.Fprintln(w)
			if _, _, skipErr := c.SkipTag(); skipErr != nil {
				return skipErr
			}
			if err := dumpElements(w, c, depth+1, c.Offset()+length); err != nil {
				return err
			}
			continue
		}

		value, err := dumpPrimitiveValue(c, tag)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, " value=%s\n", value)
	}
	return nil
}

// dumpPrimitiveValue decodes a single primitive element at the cursor's
// current position and returns its printable representation, leaving the
// cursor advanced past the element.
func dumpPrimitiveValue(c *ber.Cursor, tag ber.Tag) (string, error) {
	if tag.Class() != ber.ClassUniversal {
		return readRawElement(c)
	}

	switch tag.Number() {
	case ber.TagBoolean:
		v, err := c.ReadBool()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%v", v), nil
	case ber.TagInteger:
		v, err := c.ReadInteger()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	case ber.TagEnumerated:
		v, err := c.ReadEnumerated()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", v), nil
	case ber.TagNull:
		if err := c.ReadNull(); err != nil {
			return "", err
		}
		return "NULL", nil
	case ber.TagOctetString:
		v, err := c.ReadOctetStringOwned()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%q", strings.TrimRight(string(v), "\x00")), nil
	case ber.TagBitString:
		payload, bits, err := c.ReadBitString()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d bits %s", bits, hex.EncodeToString(payload)), nil
	default:
		return readRawElement(c)
	}
}

// readRawElement consumes the tag/length preamble at the cursor's
// current position and returns its content bytes hex-encoded, for tag
// numbers dumpPrimitiveValue does not otherwise decode.
func readRawElement(c *ber.Cursor) (string, error) {
	_, length, err := c.SkipTag()
	if err != nil {
		return "", err
	}
	raw, err := c.ReadRaw(length)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}

// readInput reads the buffer to decode from path ("-" or empty for
// stdin), applying hex or base64 decoding as requested.
func readInput(path string, hexIn, b64In bool) ([]byte, error) {
	if hexIn && b64In {
		return nil, errors.New("-hex and -b64 are mutually exclusive")
	}

	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	switch {
	case hexIn:
		return hex.DecodeString(strings.TrimSpace(string(raw)))
	case b64In:
		return base64.StdEncoding.DecodeString(strings.TrimSpace(string(raw)))
	default:
		return raw, nil
	}
}

// loadCLIConfig loads ~/.berdumprc, falling back to defaults if absent or
// unreadable.
func loadCLIConfig() *config.Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(home + "/.berdumprc")
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// allocatorFor selects the Allocator named in cfg. internal/ber ships
// only HeapAllocator today, so every configured name resolves to it; the
// config key exists so a caller embedding a pooled Allocator can switch
// on it without changing the config file format.
func allocatorFor(cfg *config.Config) ber.Allocator {
	_ = cfg.Allocator
	return ber.HeapAllocator{}
}

// newCLILogger builds the logger used for trace correlation, honoring
// the config's Trace flag: a no-op logger when Trace is off, a debug-level
// text logger on stderr when it is on.
func newCLILogger() logging.Logger {
	cfg := loadCLIConfig()
	if !cfg.Trace {
		return logging.NewNop()
	}
	return logging.New(logging.Config{Level: "debug", Format: "text", Output: "stderr"})
}
