// seehuhn.de/go/tianzige - field-character practice sheets
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Tianzige generates printable practice sheets for writing characters.
//
// The sheet is a grid of square cells, each crossed by dashed centerlines.
// The practice text is drawn into the rows of the grid; after the first
// row the characters are drawn in lighter shades, for tracing.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"golang.org/x/term"

	"seehuhn.de/go/tianzige/fontreg"
	"seehuhn.de/go/tianzige/geometry"
	"seehuhn.de/go/tianzige/internal/buildinfo"
	"seehuhn.de/go/tianzige/internal/profile"
	"seehuhn.de/go/tianzige/layout"
	"seehuhn.de/go/tianzige/shade"
	"seehuhn.de/go/tianzige/sheet"
)

var (
	textArg      = flag.String("text", "", "practice `text`")
	rowsArg      = flag.Int("rows", 8, "number of grid rows")
	colsArg      = flag.Int("cols", 10, "number of grid columns")
	cellArg      = flag.Float64("cell", 0, "largest cell size in `mm` (0 fills the page)")
	paperArg     = flag.String("paper", "a4", "paper size (a4, a5 or letter)")
	landscapeArg = flag.Bool("landscape", false, "use landscape orientation")
	policyArg    = flag.String("policy", shade.SecondLineFaint, "row shading `policy` ("+strings.Join(shade.Names(), ", ")+")")
	fillArg      = flag.String("fill", "repeat", "rows which receive the text (repeat or first:N)")
	headerArg    = flag.String("header", sheet.DefaultHeader, "header `label`")
	noHeaderArg  = flag.Bool("no-header", false, "omit the header")
	fontArg      = flag.String("font", fontreg.GoRegular, "font `name`")
	fontFileArg  = flag.String("font-file", "", "TrueType font `file` to use")
	outArg       = flag.String("o", "", "output file name, \"-\" for stdout")
	forceArg     = flag.Bool("f", false, "overwrite output file if it exists")
	pngArg       = flag.Bool("png", false, "write a PNG preview instead of PDF")
	dpiArg       = flag.Float64("dpi", 150, "resolution of the PNG preview")
	verboseArg   = flag.Bool("v", false, "show details about the generated sheet")
	versionArg   = flag.Bool("version", false, "print version information and exit")
	cpuprofile   = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile   = flag.String("memprofile", "", "write memory profile to `file`")
)

var papers = map[string]geometry.Paper{
	"a4":     geometry.A4,
	"a5":     geometry.A5,
	"letter": geometry.Letter,
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tianzige - generate character practice sheets\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Version("tianzige"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  tianzige [options] -text <text>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tianzige -text 永 -font-file NotoSerifSC-Regular.ttf\n")
		fmt.Fprintf(os.Stderr, "  tianzige -text ABC -policy gradual_fade -fill first:2 -no-header\n")
	}
	flag.Parse()

	if *versionArg {
		fmt.Println(buildinfo.Version("tianzige"))
		return
	}
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	setupTracing(*verboseArg)

	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	req, err := buildRequest(optionsFromFlags(), fontreg.NewWithBuiltins())
	if err != nil {
		return err
	}
	if !req.Policy.IsKnown() {
		fmt.Fprintf(os.Stderr, "warning: unknown policy %q, all rows are black\n", req.Policy.Name)
	}

	out := *outArg
	if out == "" {
		out = "practice.pdf"
		if *pngArg {
			out = "practice.png"
		}
	}
	if out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("not writing binary output to a terminal")
		}
	} else if !*forceArg {
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", out)
		}
	}

	buf := &bytes.Buffer{}
	if *pngArg {
		err = sheet.RenderPNG(buf, req, *dpiArg)
	} else {
		err = sheet.Render(buf, req)
	}
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = io.Copy(os.Stdout, buf)
		return err
	}
	return os.WriteFile(out, buf.Bytes(), 0o644)
}

// options holds the command line settings which describe the sheet.
type options struct {
	text       string
	rows, cols int
	cellMM     float64
	paper      string
	landscape  bool
	policy     string
	fill       string
	header     string
	noHeader   bool
	font       string
	fontSet    bool
	fontFile   string
}

func optionsFromFlags() *options {
	return &options{
		text:      *textArg,
		rows:      *rowsArg,
		cols:      *colsArg,
		cellMM:    *cellArg,
		paper:     *paperArg,
		landscape: *landscapeArg,
		policy:    *policyArg,
		fill:      *fillArg,
		header:    *headerArg,
		noHeader:  *noHeaderArg,
		font:      *fontArg,
		fontSet:   isSet("font"),
		fontFile:  *fontFileArg,
	}
}

// buildRequest converts the command line settings into a sheet request.
// A font given by file is added to fonts.
func buildRequest(o *options, fonts *fontreg.Registry) (*sheet.Request, error) {
	paper, ok := papers[strings.ToLower(o.paper)]
	if !ok {
		return nil, fmt.Errorf("unknown paper size %q", o.paper)
	}
	if o.landscape {
		paper = paper.Landscape()
	}

	fill, err := layout.ParseFill(o.fill)
	if err != nil {
		return nil, err
	}

	fontName := o.font
	if o.fontFile != "" {
		if !o.fontSet {
			base := filepath.Base(o.fontFile)
			fontName = strings.TrimSuffix(base, filepath.Ext(base))
		}
		if _, err := fonts.Lookup(fontName); err == nil {
			return nil, fmt.Errorf("font name %q is already in use, choose another one with -font", fontName)
		}
		err = fonts.Register(fontName, o.fontFile)
		if err != nil {
			return nil, err
		}
	}
	F, err := fonts.Lookup(fontName)
	if err != nil {
		return nil, err
	}

	header := o.header
	if o.noHeader {
		header = ""
	}

	req := &sheet.Request{
		Page: geometry.DefaultPage(paper),
		Grid: geometry.GridRequest{
			Rows:     o.rows,
			Cols:     o.cols,
			CellSize: o.cellMM * geometry.MM,
		},
		Text:   o.text,
		Font:   F,
		Policy: shade.Lookup(o.policy),
		Header: header,
		Fill:   fill,
	}
	return req, nil
}

func isSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func setupTracing(verbose bool) {
	level := "Error"
	if verbose {
		level = "Debug"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.tianzige.fonts": level,
		"trace.tianzige.sheet": level,
	}
	err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true))
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot configure tracing:", err)
		return
	}
	tracing.SetTraceSelector(trace2go.Selector())
}
