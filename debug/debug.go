package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Walk   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("CONFQ_DEBUG_TOKENS")
	d.Walk = boolEnv("CONFQ_DEBUG_WALK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Walk() bool {
	return d.Walk
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
