package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/confq/doc"
	"github.com/signadot/confq/parse"
)

// readDoc parses the config file at arg, with "-" meaning stdin.
func readDoc(arg string) (*doc.Document, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	d, err := parse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return d, nil
}
