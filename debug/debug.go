package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Store bool
	Alloc bool
}

var d *debug

func init() {
	d = &debug{}
	d.Store = boolEnv("SERD_DEBUG_STORE")
	d.Alloc = boolEnv("SERD_DEBUG_ALLOC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Store() bool {
	return d.Store
}
func Alloc() bool {
	return d.Alloc
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
