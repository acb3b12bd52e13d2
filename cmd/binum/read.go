package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/binum/internal/binfile"
	"github.com/samcharles93/binum/pkg/binum"
)

func readCmd() *cli.Command {
	var (
		format    string
		uppercase bool
		noPrefix  bool
		noPad     bool
	)

	flags := valueFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "output format (hex, dec, oct, bin, sci, all)",
			Value:       "hex",
			Destination: &format,
		},
		&cli.BoolFlag{
			Name:        "uppercase",
			Aliases:     []string{"u"},
			Usage:       "uppercase hex digits and scientific exponent marker",
			Destination: &uppercase,
		},
		&cli.BoolFlag{
			Name:        "no-prefix",
			Usage:       "omit the 0x prefix on hex output",
			Destination: &noPrefix,
		},
		&cli.BoolFlag{
			Name:        "no-pad",
			Usage:       "do not zero-pad hex and binary output to the source width",
			Destination: &noPad,
		},
	)
	flags = append(flags, loggingFlags()...)

	return &cli.Command{
		Name:      "read",
		Usage:     "Read one value from a file and print it",
		ArgsUsage: "<file>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}

			cfg := LoadConfig()
			applyValueConfig(c, cfg)

			padded := !noPad
			prefix := !noPrefix
			applyHexConfig(c, cfg, &uppercase, &prefix, &padded)

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

			cur := binum.NewCursorAt(f.Data, offset)
			val, err := typ.Read(cur)
			if err != nil {
				return fmt.Errorf("read %s at offset %d: %w", typ, offset, err)
			}

			d := binum.Display{
				Hex:        binum.HexOptions{Uppercase: uppercase, Prefix: prefix, Padded: padded},
				Binary:     binum.BinaryOptions{Padded: padded},
				Scientific: binum.ScientificOptions{Uppercase: uppercase},
			}

			if format == "all" {
				return printAllModes(val, d)
			}

			d.Mode, err = parseFormat(format)
			if err != nil {
				return err
			}
			out, err := val.Render(d)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
}

// parseFormat accepts the short CLI names alongside the canonical mode names.
func parseFormat(s string) (binum.Mode, error) {
	switch s {
	case "dec":
		return binum.ModeDecimal, nil
	case "oct":
		return binum.ModeOctal, nil
	case "bin":
		return binum.ModeBinary, nil
	case "sci":
		return binum.ModeScientific, nil
	}
	return binum.ParseMode(s)
}

func printAllModes(val binum.Value, d binum.Display) error {
	for _, m := range binum.Modes() {
		d.Mode = m
		out, err := val.Render(d)
		if errors.Is(err, binum.ErrUnsupportedDisplay) {
			continue
		}
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %s\n", m.String()+":", out)
	}
	return nil
}
