// Command tupa converts Cinix transcripts of reconstructed Middle Chinese
// into TUPA romanization.
//
// With no arguments it converts stdin to stdout, line by line. With file
// arguments it converts each file to a sibling output file, several files
// in parallel. Sentence-boundary "." tokens are stripped by default so
// the syllable-per-character alignment survives conversion.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mkpoli/wenyan-book-video/internal/logger"
	"github.com/mkpoli/wenyan-book-video/internal/transcription"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("tupa")
	var (
		jobs        = fs.Int64Long("jobs", 4, "Number of files converted in parallel")
		outSuffix   = fs.StringLong("out-suffix", ".tupa.txt", "Suffix replacing the input file extension")
		boundaries  = fs.StringEnumLong("boundaries", "Sentence boundary markers: strip before converting, or keep as tokens", "strip", "keep")
		diagnostics = fs.StringEnumLong("diagnostics", "Conversion diagnostics: log at warn level, or quiet", "log", "quiet")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()

	conv := converter{
		log:            log,
		keepBoundaries: *boundaries == "keep",
		logDiagnostics: *diagnostics == "log",
	}

	paths := fs.GetArgs()
	if len(paths) == 0 {
		return conv.convertStream(os.Stdin, os.Stdout)
	}

	g := new(errgroup.Group)
	g.SetLimit(int(*jobs))
	for _, path := range paths {
		path := path
		g.Go(func() error {
			return conv.convertFile(path, *outSuffix)
		})
	}
	return g.Wait()
}

type converter struct {
	log            *slog.Logger
	keepBoundaries bool
	logDiagnostics bool
}

func (c converter) convertLine(line string) string {
	if !c.keepBoundaries {
		line = transcription.StripBoundaryMarkers(line)
	}
	converted, diags := transcription.ConvertLine(line)
	if c.logDiagnostics {
		for _, d := range diags {
			c.log.Warn("conversion diagnostic",
				"kind", d.Kind, "slot", d.Slot, "symbol", d.Symbol, "syllable", d.Syllable)
		}
	}
	return converted
}

func (c converter) convertStream(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, c.convertLine(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c converter) convertFile(path, outSuffix string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer in.Close()

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + outSuffix
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	if err := c.convertStream(in, out); err != nil {
		out.Close()
		return fmt.Errorf("converting %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	c.log.Info("converted", "input", path, "output", outPath)
	return nil
}
