package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/oy3o/bytable"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	logFormatFlag = cli.StringFlag{
		Name:   "log.format",
		Usage:  "Log output format (text|json)",
		Value:  "text",
		EnvVar: "BYTABLE_LOG_FORMAT",
	}
	logVerbosityFlag = cli.IntFlag{
		Name:   "log.verbosity",
		Usage:  "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
		Value:  3,
		EnvVar: "BYTABLE_LOG_VERBOSITY",
	}
	hexFlag = cli.StringFlag{
		Name:  "hex",
		Usage: "Encoded bytes as a hex string",
	}
)

// newApp builds the CLI. Results go to stdout, logs to stderr.
func newApp(stdout, stderr io.Writer) *cli.App {
	log := logrus.New()
	log.Out = stderr

	app := cli.NewApp()
	app.Name = "bytable"
	app.Usage = "Inspect the bytable binary encoding"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{logFormatFlag, logVerbosityFlag}
	app.Before = func(c *cli.Context) error {
		return setupLogging(log, c.GlobalString(logFormatFlag.Name), c.GlobalInt(logVerbosityFlag.Name))
	}
	app.Commands = []cli.Command{
		{
			Name:      "encode",
			Usage:     "Encode values in order and print them as hex",
			ArgsUsage: "<type>:<literal>...",
			Action: func(c *cli.Context) error {
				return encode(c.App.Writer, log, c.Args())
			},
		},
		{
			Name:      "decode",
			Usage:     "Decode hex as the listed types, in order",
			ArgsUsage: "<type>...",
			Flags:     []cli.Flag{hexFlag},
			Action: func(c *cli.Context) error {
				return decode(c.App.Writer, log, c.String(hexFlag.Name), c.Args())
			},
		},
		{
			Name:      "varint",
			Usage:     "Show the minimal-length encodings of an integer",
			ArgsUsage: "<integer>",
			// Negative integers would otherwise parse as flags.
			SkipFlagParsing: true,
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return errors.New("varint takes exactly one integer")
				}
				return varint(c.App.Writer, c.Args().First())
			},
		},
	}
	return app
}

func setupLogging(log *logrus.Logger, format string, verbosity int) error {
	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	if verbosity < 0 || verbosity > 5 {
		return fmt.Errorf("log verbosity %d out of range 0..5", verbosity)
	}
	// 0 maps to fatal, which is one above logrus.PanicLevel.
	log.SetLevel(logrus.Level(verbosity + 1))
	return nil
}

func encode(w io.Writer, log *logrus.Logger, tokens []string) error {
	b := bytable.NewByteBuffer()
	for i, token := range tokens {
		name, literal, present := splitToken(token)
		k, err := lookup(name)
		if err != nil {
			return err
		}
		before := b.Available()
		if err := k.encode(b, literal, present); err != nil {
			return fmt.Errorf("value %d (%s): %w", i, token, err)
		}
		log.WithFields(logrus.Fields{
			"index": i,
			"type":  name,
			"bytes": b.Available() - before,
		}).Debug("Encoded value")
	}
	_, err := fmt.Fprintln(w, hex.EncodeToString(b.Bytes()))
	return err
}

func decode(w io.Writer, log *logrus.Logger, hexData string, names []string) error {
	data, err := hex.DecodeString(hexData)
	if err != nil {
		return fmt.Errorf("invalid --hex: %w", err)
	}
	b := bytable.ByteBufferOf(data)
	for i, name := range names {
		k, err := lookup(name)
		if err != nil {
			return err
		}
		v, err := k.decode(b)
		if err != nil {
			return fmt.Errorf("value %d (%s): %w", i, name, err)
		}
		log.WithFields(logrus.Fields{
			"index":     i,
			"type":      name,
			"available": b.Available(),
		}).Debug("Decoded value")
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, v); err != nil {
			return err
		}
	}
	if n := b.Available(); n > 0 {
		log.WithField("bytes", n).Warn("Trailing bytes after decoding")
		_, err = fmt.Fprintf(w, "trailing: %s\n", hex.EncodeToString(b.Bytes()))
	}
	return err
}

func varint(w io.Writer, arg string) error {
	signed, serr := strconv.ParseInt(arg, 0, 64)
	unsigned, uerr := strconv.ParseUint(arg, 0, 64)
	if serr != nil && uerr != nil {
		return fmt.Errorf("not an integer: %q", arg)
	}
	signedLine, unsignedLine := "out of range", "out of range"
	if serr == nil {
		enc := bytable.AppendSigned(nil, signed)
		signedLine = fmt.Sprintf("%x (%d bytes)", enc, len(enc))
	}
	if uerr == nil {
		enc := bytable.AppendUnsigned(nil, unsigned)
		unsignedLine = fmt.Sprintf("%x (%d bytes)", enc, len(enc))
	}
	_, err := fmt.Fprintf(w, "signed:   %s\nunsigned: %s\n", signedLine, unsignedLine)
	return err
}
