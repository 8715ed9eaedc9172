package config

import (
	"fmt"
	"strings"

	"github.com/mmrzaf/dsdgen/internal/table"
)

// Session is the validated, immutable configuration a generation run executes
// under. Derived sessions (per chunk, per table) share the same scaling.
type Session struct {
	scaling        *table.Scaling
	directory      string
	suffix         string
	table          *table.Table
	nullString     string
	separator      rune
	doNotTerminate bool
	noSexism       bool
	parallelism    int
	overwrite      bool
	chunkNumber    int
}

// DefaultSession returns a session built from the option defaults.
func DefaultSession() *Session {
	s, err := (&Options{
		Scale:       DefaultScale,
		Directory:   DefaultDirectory,
		Suffix:      DefaultSuffix,
		NullString:  DefaultNullString,
		Separator:   DefaultSeparator,
		Parallelism: DefaultParallelism,
	}).Session()
	if err != nil {
		panic(fmt.Sprintf("default session: %v", err))
	}
	return s
}

func (s *Session) Scaling() *table.Scaling {
	return s.scaling
}

func (s *Session) TargetDirectory() string {
	return s.directory
}

func (s *Session) Suffix() string {
	return s.suffix
}

// GenerateOnlyOneTable reports whether the run is restricted to a single table.
func (s *Session) GenerateOnlyOneTable() bool {
	return s.table != nil
}

// OnlyTableToGenerate returns the restricted table. Callers must check
// GenerateOnlyOneTable first.
func (s *Session) OnlyTableToGenerate() table.Table {
	if s.table == nil {
		panic("session does not restrict generation to one table")
	}
	return *s.table
}

func (s *Session) NullString() string {
	return s.nullString
}

func (s *Session) Separator() rune {
	return s.separator
}

func (s *Session) TerminateRowsWithSeparator() bool {
	return !s.doNotTerminate
}

func (s *Session) IsSexist() bool {
	return !s.noSexism
}

func (s *Session) Parallelism() int {
	return s.parallelism
}

func (s *Session) ChunkNumber() int {
	return s.chunkNumber
}

func (s *Session) ShouldOverwrite() bool {
	return s.overwrite
}

// WithChunkNumber returns a copy of the session bound to one parallel chunk.
func (s *Session) WithChunkNumber(chunkNumber int) *Session {
	clone := *s
	clone.chunkNumber = chunkNumber
	return &clone
}

// WithTable returns a copy of the session restricted to a single table.
func (s *Session) WithTable(t table.Table) *Session {
	clone := *s
	clone.table = &t
	return &clone
}

// CommandLine reconstructs the flag string that would produce this session,
// listing only the options that differ from their defaults.
func (s *Session) CommandLine() string {
	var parts []string
	if s.scaling.Scale() != DefaultScale {
		parts = append(parts, fmt.Sprintf("--scale %v", s.scaling.Scale()))
	}
	if s.directory != DefaultDirectory {
		parts = append(parts, fmt.Sprintf("--directory %s", s.directory))
	}
	if s.suffix != DefaultSuffix {
		parts = append(parts, fmt.Sprintf("--suffix %s", s.suffix))
	}
	if s.table != nil {
		parts = append(parts, fmt.Sprintf("--table %s", s.table.Name()))
	}
	if s.nullString != DefaultNullString {
		parts = append(parts, fmt.Sprintf("--null %s", s.nullString))
	}
	if string(s.separator) != DefaultSeparator {
		parts = append(parts, fmt.Sprintf("--separator %c", s.separator))
	}
	if s.doNotTerminate != DefaultDoNotTerminate {
		parts = append(parts, "--do-not-terminate")
	}
	if s.noSexism != DefaultNoSexism {
		parts = append(parts, "--no-sexism")
	}
	if s.parallelism != DefaultParallelism {
		parts = append(parts, fmt.Sprintf("--parallelism %d", s.parallelism))
	}
	if s.overwrite != DefaultOverwrite {
		parts = append(parts, "--overwrite")
	}
	return strings.Join(parts, " ")
}
