// Command routescrape reads one rendered routing page and prints the trip
// routing record as JSON on stdout.
//
//	routescrape [-pretty] [page.html]     extract from file, or stdin if omitted
//	routescrape -trip legs.jsonl          print a summary of extracted legs
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/use-agent/routescrape/config"
	"github.com/use-agent/routescrape/extractor"
	"github.com/use-agent/routescrape/logging"
	"github.com/use-agent/routescrape/models"
	"github.com/use-agent/routescrape/trip"
)

func main() {
	cfg := config.Load()
	logging.Init(cfg.Log, os.Stderr)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
// stdout receives output only when the whole operation succeeds.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("routescrape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	pretty := fs.Bool("pretty", false, "indent JSON output")
	tripPath := fs.String("trip", "", "summarize a JSON Lines file of extracted legs")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *tripPath != "" {
		return summarize(*tripPath, stdout)
	}

	in := stdin
	source := "stdin"
	if fs.NArg() > 0 {
		source = fs.Arg(0)
		f, err := os.Open(source)
		if err != nil {
			slog.Error("cannot open input", "path", source, "error", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	rec, err := extractor.ExtractHTML(in)
	if err != nil {
		se := models.AsScrapeError(err)
		slog.Error("routing extraction failed", "source", source, "code", se.Code, "error", se.Message)
		return 1
	}

	out, err := encode(rec, *pretty)
	if err != nil {
		slog.Error("encode routing", "error", err)
		return 1
	}
	if _, err := stdout.Write(out); err != nil {
		slog.Error("write output", "error", err)
		return 1
	}
	return 0
}

// encode renders rec as one JSON value plus newline, leaving &, < and >
// unescaped so URLs print as they appear on the page.
func encode(rec *models.TripRouting, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func summarize(path string, stdout io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("cannot open trip", "path", path, "error", err)
		return 1
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	t, err := trip.Load(name, f)
	if err != nil {
		slog.Error("load trip", "path", path, "error", err)
		return 1
	}

	if _, err := fmt.Fprint(stdout, t.String()); err != nil {
		slog.Error("write output", "error", err)
		return 1
	}
	return 0
}
