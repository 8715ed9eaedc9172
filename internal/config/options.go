package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mmrzaf/dsdgen/internal/table"
)

// Option defaults. Environment variables (DSDGEN_*) override these before
// flag parsing, so flags always win.
const (
	DefaultScale          = 1.0
	DefaultDirectory      = "."
	DefaultSuffix         = ".dat"
	DefaultNullString     = ""
	DefaultSeparator      = "|"
	DefaultDoNotTerminate = false
	DefaultNoSexism       = false
	DefaultParallelism    = 1
	DefaultOverwrite      = false
	DefaultLogLevel       = "info"
)

// Options carries the raw command-line configuration before validation.
type Options struct {
	Scale          float64
	Directory      string
	Suffix         string
	Table          string
	NullString     string
	Separator      string
	DoNotTerminate bool
	NoSexism       bool
	Parallelism    int
	Overwrite      bool
	LogLevel       string
}

// NewOptions returns options populated from defaults and DSDGEN_* environment
// variables.
func NewOptions() *Options {
	return &Options{
		Scale:       getEnvFloat("DSDGEN_SCALE", DefaultScale),
		Directory:   getEnv("DSDGEN_DIRECTORY", DefaultDirectory),
		Suffix:      getEnv("DSDGEN_SUFFIX", DefaultSuffix),
		Table:       getEnv("DSDGEN_TABLE", ""),
		NullString:  getEnv("DSDGEN_NULL", DefaultNullString),
		Separator:   getEnv("DSDGEN_SEPARATOR", DefaultSeparator),
		Parallelism: getEnvInt("DSDGEN_PARALLELISM", DefaultParallelism),
		LogLevel:    getEnv("DSDGEN_LOG_LEVEL", DefaultLogLevel),
	}
}

// Validate checks every option against its allowed range.
func (o *Options) Validate() error {
	if o.Scale <= 0 || o.Scale > 100000 {
		return newInvalidOption("scale", strconv.FormatFloat(o.Scale, 'f', -1, 64),
			"scale must be greater than 0 and at most 100000")
	}
	if o.Directory == "" {
		return newInvalidOption("directory", o.Directory, "directory cannot be an empty string")
	}
	if o.Suffix == "" {
		return newInvalidOption("suffix", o.Suffix, "suffix cannot be an empty string")
	}
	if o.Parallelism < 1 {
		return newInvalidOption("parallelism", strconv.Itoa(o.Parallelism),
			"parallelism must be at least 1")
	}
	if len(o.Separator) != 1 {
		return newInvalidOption("separator", o.Separator, "separator must be a single character")
	}
	if o.Table != "" {
		if _, err := table.Lookup(o.Table); err != nil {
			return newInvalidOption("table", o.Table, err.Error())
		}
	}
	return nil
}

// Session validates the options and binds them into an immutable Session.
func (o *Options) Session() (*Session, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	scaling, err := table.NewScaling(o.Scale)
	if err != nil {
		return nil, fmt.Errorf("binding scale: %w", err)
	}
	s := &Session{
		scaling:        scaling,
		directory:      o.Directory,
		suffix:         o.Suffix,
		nullString:     o.NullString,
		separator:      rune(o.Separator[0]),
		doNotTerminate: o.DoNotTerminate,
		noSexism:       o.NoSexism,
		parallelism:    o.Parallelism,
		overwrite:      o.Overwrite,
		chunkNumber:    1,
	}
	if o.Table != "" {
		t, err := table.Lookup(o.Table)
		if err != nil {
			return nil, newInvalidOption("table", o.Table, err.Error())
		}
		s.table = &t
	}
	return s, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
