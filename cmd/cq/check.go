package main

import (
	"fmt"

	"github.com/signadot/confq/doc"
	"github.com/signadot/confq/query"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: check requires an object path and an expression", cli.ErrUsage)
	}
	path, src := args[0], args[1]
	prog, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := args[2:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		ok, err := checkArg(prog, arg, path)
		if err != nil {
			return fmt.Errorf("error checking %s with %s: %w", arg, path, err)
		}
		if !ok {
			fmt.Fprintln(cc.Out, "false")
			return cli.ExitCodeErr(1)
		}
	}
	fmt.Fprintln(cc.Out, "true")
	return nil
}

func checkArg(prog *vm.Program, arg, path string) (bool, error) {
	d, err := readDoc(arg)
	if err != nil {
		return false, err
	}
	env, err := checkEnv(d, path)
	if err != nil {
		return false, err
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return false, err
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression is not boolean: %v", out)
	}
	return b, nil
}

// checkEnv binds the resolved value to "value", typed by the narrowest
// coercion that accepts it: int, then float, then bool, then string.
func checkEnv(d *doc.Document, path string) (map[string]any, error) {
	s, err := query.GetString(d, path)
	if err != nil {
		return nil, err
	}
	env := map[string]any{"value": s}
	if v, err := query.GetInt(d, path, 64); err == nil {
		env["value"] = v
	} else if v, err := query.GetFloat(d, path, 64); err == nil {
		env["value"] = v
	} else if v, err := query.GetBool(d, path); err == nil {
		env["value"] = v
	}
	return env, nil
}
