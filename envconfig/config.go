package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jmorganca/f16vec/logutil"
)

var (
	// Set via F16VEC_DEBUG in the environment
	Debug bool
	// Derived from F16VEC_DEBUG; 2 or higher enables trace output
	LogLevel slog.Level
	// Set via F16VEC_SUMMARY in the environment
	Summary bool
)

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"F16VEC_DEBUG":     {"F16VEC_DEBUG", Debug, "Show additional debug information (e.g. F16VEC_DEBUG=1, F16VEC_DEBUG=2 for every vector)"},
		"F16VEC_SUMMARY":   {"F16VEC_SUMMARY", Summary, "Print a per-operation summary table after writing"},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

func LoadConfig() {
	Debug = false
	LogLevel = slog.LevelInfo
	if debug := clean("F16VEC_DEBUG"); debug != "" {
		if n, err := strconv.Atoi(debug); err == nil {
			Debug = n > 0
			LogLevel = slog.LevelInfo - slog.Level(4*n)
			if LogLevel < logutil.LevelTrace {
				LogLevel = logutil.LevelTrace
			}
		} else if d, err := strconv.ParseBool(debug); err == nil {
			Debug = d
			if d {
				LogLevel = slog.LevelDebug
			}
		} else {
			Debug = true
			LogLevel = slog.LevelDebug
		}
	}

	Summary = false
	if summary := clean("F16VEC_SUMMARY"); summary != "" {
		s, err := strconv.ParseBool(summary)
		Summary = err != nil || s
	}
}
