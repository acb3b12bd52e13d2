package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/binum/internal/logger"
	"github.com/samcharles93/binum/pkg/binum"
)

var (
	offsetArg string
	typeName  string
	endian    string
	logLevel  string
	logFormat string
)

func valueFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "offset",
			Aliases:     []string{"o"},
			Usage:       "byte offset into the file (decimal or 0x-prefixed hex)",
			Value:       "0",
			Destination: &offsetArg,
		},
		&cli.StringFlag{
			Name:        "type",
			Aliases:     []string{"t"},
			Usage:       "value type (u8..u128, i8..i128, f32, f64)",
			Value:       "u32",
			Destination: &typeName,
		},
		&cli.StringFlag{
			Name:        "endian",
			Aliases:     []string{"e"},
			Usage:       "byte order (big, little)",
			Value:       "big",
			Destination: &endian,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

func buildLogger() logger.Logger {
	return logger.Build(logFormat, logLevel)
}

// parseOffset accepts decimal, 0x-hex and 0-octal offsets.
func parseOffset(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid offset %q", s)
	}
	return v, nil
}

func parseType() (binum.Type, error) {
	kind, err := binum.ParseKind(typeName)
	if err != nil {
		return binum.Type{}, err
	}
	var order binum.Endian
	if err := order.UnmarshalText([]byte(endian)); err != nil {
		return binum.Type{}, err
	}
	return binum.Type{Kind: kind, Order: order}, nil
}
