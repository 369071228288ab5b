package main

import (
	"bufio"
	"io"
	"os"

	"github.com/woozymasta/geocodec/internal/config"
	"github.com/woozymasta/geocodec/internal/format"
	"github.com/woozymasta/geocodec/internal/logger"
	"github.com/woozymasta/geocodec/pkg/geojson"
	"github.com/woozymasta/geocodec/pkg/hostgeom"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input      string  `short:"i" long:"in"        description:"Input file with one or more GeoJSON geometries. Reads from stdin if empty"`
	Output     string  `short:"o" long:"out"       description:"Output file path. Writes to stdout if empty"`
	ConfigFile string  `short:"c" long:"config"    description:"Path to configuration file, built-in defaults if empty"`
	Format     string  `short:"f" long:"format"    description:"Output format" choice:"geojson" choice:"wkt" choice:"yaml" default:"geojson"`
	SRID       int     `short:"s" long:"srid"      description:"Override the factory SRID" default:"-1"`
	Precision  string  `short:"p" long:"precision" description:"Override the precision model" choice:"floating" choice:"floating_single" choice:"fixed"`
	Scale      float64 `long:"scale"               description:"Scale of the fixed precision model, e.g. 100 keeps two decimals"`
	Pascal     bool    `long:"pascal"              description:"Write PascalCase type names"`
	Indent     string  `long:"indent"              description:"Indent GeoJSON output with this string of spaces or tabs"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	in := io.Reader(os.Stdin)
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			log.Fatal().Err(err).Msg("Error opening input file")
		}
		defer f.Close()
		in = f
	}

	out := io.Writer(os.Stdout)
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating output file")
		}
		defer f.Close()
		out = f
	}

	if err := run(opts, in, out); err != nil {
		log.Fatal().Err(err).Msg("Conversion failed")
	}
}

// configure merges the configuration file with command line overrides.
func configure(opts Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	if opts.SRID >= 0 {
		cfg.SRID = opts.SRID
	}
	if opts.Precision != "" {
		cfg.Precision = config.Precision{Type: opts.Precision, Scale: opts.Scale}
	}
	if opts.Pascal {
		cfg.PascalCase = true
	}
	if opts.Indent != "" {
		cfg.Indent = opts.Indent
	}
	return cfg, cfg.Validate()
}

// run reads whitespace separated geometries from in and writes each one,
// normalised through the configured factory, on its own line.
func run(opts Options, in io.Reader, out io.Writer) error {
	f, err := format.Parse(opts.Format)
	if err != nil {
		return err
	}
	cfg, err := configure(opts)
	if err != nil {
		return err
	}
	a, err := cfg.Adapter(geojson.WithLogger(log.Logger))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	dec := geojson.NewTokenDecoder(in)
	count := 0
	for {
		more, err := hasMore(dec)
		if err != nil {
			return errors.Wrapf(err, "error reading geometry %d", count+1)
		}
		if !more {
			break
		}

		t, err := a.Decode(dec)
		if err != nil {
			return errors.Wrapf(err, "error decoding geometry %d", count+1)
		}
		data, err := format.Render(a, t, f)
		if err != nil {
			return errors.Wrapf(err, "error rendering geometry %d", count+1)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return errors.Wrap(err, "error writing output")
		}
		count++
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "error writing output")
	}

	log.Info().
		Int("count", count).
		Str("format", string(f)).
		Int("srid", a.Factory().SRID()).
		Stringer("precision", a.Factory().PrecisionModel()).
		Msg("Geometries converted")
	return nil
}

// hasMore reports whether another top-level value follows. A clean end of
// input is the only non-error stop.
func hasMore(dec *jsontext.Decoder) (bool, error) {
	if dec.PeekKind() != jsontext.KindInvalid {
		return true, nil
	}
	_, err := dec.ReadToken()
	if err == io.EOF {
		return false, nil
	}
	return false, err
}
