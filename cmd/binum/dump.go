package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/binum/internal/binfile"
	"github.com/samcharles93/binum/pkg/binum"
)

const dumpWidth = 16

func dumpCmd() *cli.Command {
	var window int64

	flags := valueFlags()
	flags = append(flags,
		&cli.Int64Flag{
			Name:        "window",
			Aliases:     []string{"w"},
			Usage:       "bytes of context to show around the offset",
			Value:       64,
			Destination: &window,
		},
	)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:      "dump",
		Usage:     "Hex dump a window of a file with the value at the offset interpreted",
		ArgsUsage: "<file>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}

			cfg := LoadConfig()
			applyValueConfig(c, cfg)

			typ, err := parseType()
			if err != nil {
				return err
			}
			offset, err := parseOffset(offsetArg)
			if err != nil {
				return err
			}

			f, err := binfile.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()
			buildLogger().Debug("opened file", "path", f.Path, "size", len(f.Data))

			if window < 0 {
				return fmt.Errorf("window must be non-negative")
			}
			dumpWindow(f.Data, offset, uint64(window), typ)

			cur := binum.NewCursorAt(f.Data, offset)
			val, err := typ.Read(cur)
			if err != nil {
				fmt.Printf("\n%s at 0x%x: %v\n", typ, offset, err)
				return nil
			}

			fmt.Printf("\n%s at 0x%x:\n", typ, offset)
			d := binum.DefaultDisplay(binum.ModeHex)
			for _, m := range binum.Modes() {
				d.Mode = m
				out, err := val.Render(d)
				if errors.Is(err, binum.ErrUnsupportedDisplay) {
					continue
				}
				if err != nil {
					return err
				}
				fmt.Printf("  %-12s %s\n", m.String()+":", out)
			}
			return nil
		},
	}
}

// dumpWindow prints a row-aligned hex and ASCII dump covering the window
// around offset. The bytes of the value itself are bracketed.
func dumpWindow(data []byte, offset, window uint64, typ binum.Type) {
	size := uint64(len(data))
	start := uint64(0)
	if offset > window/2 {
		start = offset - window/2
	}
	start -= start % dumpWidth
	end := start + window
	if end > size {
		end = size
	}

	valStart := offset
	valEnd := offset + typ.Size()

	for row := start; row < end; row += dumpWidth {
		var hex, ascii strings.Builder
		for i := row; i < row+dumpWidth; i++ {
			if i >= end {
				hex.WriteString("    ")
				continue
			}
			b := data[i]
			left, right := ' ', ' '
			if i == valStart {
				left = '['
			}
			if i+1 == valEnd {
				right = ']'
			}
			fmt.Fprintf(&hex, "%c%02x%c", left, b, right)
			if b >= 0x20 && b < 0x7f {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}
		fmt.Printf("%08x %s |%s|\n", row, hex.String(), ascii.String())
	}
}
