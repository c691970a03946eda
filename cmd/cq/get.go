package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/confq/doc"
	"github.com/signadot/confq/query"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := getArg(cfg, cc.Out, arg, path); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, w io.Writer, arg, path string) error {
	d, err := readDoc(arg)
	if err != nil {
		return err
	}
	v, err := coerce(cfg, d, path)
	if err != nil {
		return err
	}
	return emit(cfg.MainConfig, w, v)
}

// coerce applies the -as conversion; without it the terminal text is
// returned exactly as written in the source.
func coerce(cfg *GetConfig, d *doc.Document, path string) (any, error) {
	switch cfg.As {
	case "", "raw":
		raw, err := query.Get(d, path)
		if err != nil {
			return nil, err
		}
		return string(raw), nil
	case "string", "str", "s":
		return query.GetString(d, path)
	case "int", "i":
		return query.GetInt(d, path, cfg.Bits)
	case "uint", "u":
		return query.GetUint(d, path, cfg.Bits)
	case "float", "f":
		return query.GetFloat(d, path, cfg.Bits)
	case "bool", "b":
		return query.GetBool(d, path)
	case "char", "c":
		c, err := query.GetChar(d, path)
		if err != nil {
			return nil, err
		}
		return string(c), nil
	default:
		return nil, fmt.Errorf("%w: unknown coercion %q", cli.ErrUsage, cfg.As)
	}
}

func emit(cfg *MainConfig, w io.Writer, v any) error {
	f := cfg.outFormat()
	switch {
	case f.IsJSON():
		d, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", d)
		return err
	case f.IsYAML():
		d, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		if cfg.colorize(w) {
			_, err := color.New(color.FgCyan).Fprintf(w, "%v\n", v)
			return err
		}
		_, err := fmt.Fprintf(w, "%v\n", v)
		return err
	}
}
