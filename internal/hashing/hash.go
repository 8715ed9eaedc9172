package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mmrzaf/dsdgen/internal/config"
)

type sessionHashPayload struct {
	Scale         float64 `json:"scale"`
	Directory     string  `json:"directory"`
	Suffix        string  `json:"suffix"`
	Table         string  `json:"table,omitempty"`
	NullString    string  `json:"null_string"`
	Separator     string  `json:"separator"`
	Terminate     bool    `json:"terminate"`
	SexistNames   bool    `json:"sexist_names"`
	Parallelism   int     `json:"parallelism"`
	FormatVersion int     `json:"format_version"`
}

// HashSession returns a stable fingerprint of everything that influences the
// generated bytes. Two sessions with the same hash produce identical output.
func HashSession(session *config.Session) (string, error) {
	p := sessionHashPayload{
		Scale:         session.Scaling().Scale(),
		Directory:     session.TargetDirectory(),
		Suffix:        session.Suffix(),
		NullString:    session.NullString(),
		Separator:     string(session.Separator()),
		Terminate:     session.TerminateRowsWithSeparator(),
		SexistNames:   session.IsSexist(),
		Parallelism:   session.Parallelism(),
		FormatVersion: 1,
	}
	if session.GenerateOnlyOneTable() {
		p.Table = session.OnlyTableToGenerate().Name()
	}

	data, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
