// SPDX-License-Identifier: MIT

package spec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jigsaw/core"
)

// fileValidate checks the structural tags on File before any row is parsed.
var fileValidate = validator.New()

// File is the YAML form of a composition skeleton.
//
//	stage: 8
//	part_heads: ["18234567"]
//	fragments:
//	  - x: 0
//	    y: 0
//	    rows:
//	      - {row: "12345678", method: "Cambridge"}
//	      - {row: "21436587", call: "-", excluded: true}
//	      - {row: "12345678"}
//
// The last row of every fragment is its leftover row and is never proved, whatever
// its excluded flag says. part_heads lists generators; the group they generate is
// used, so an empty list means a single part.
type File struct {
	Stage     int        `yaml:"stage" validate:"required,min=1,max=34"`
	PartHeads []string   `yaml:"part_heads,omitempty"`
	Fragments []FragFile `yaml:"fragments" validate:"required,min=1,dive"`
}

// FragFile is the YAML form of one fragment.
type FragFile struct {
	X     float32   `yaml:"x"`
	Y     float32   `yaml:"y"`
	Muted bool      `yaml:"muted,omitempty"`
	Rows  []RowFile `yaml:"rows" validate:"required,min=1,dive"`
}

// RowFile is the YAML form of one skeleton row.
type RowFile struct {
	Row      string `yaml:"row" validate:"required"`
	Call     string `yaml:"call,omitempty"`
	Method   string `yaml:"method,omitempty"`
	LeadEnd  bool   `yaml:"lead_end,omitempty"`
	Excluded bool   `yaml:"excluded,omitempty"`
}

// LoadFile reads and validates a YAML skeleton from path.
func LoadFile(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("spec: read %s: %w", path, err)
	}

	return Parse(data)
}

// Load reads and validates a YAML skeleton from r.
func Load(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("spec: read: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes into a validated Spec. Unknown keys are rejected.
func Parse(data []byte) (*Spec, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidSpec)
		}
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidSpec, err)
	}

	return f.Build()
}

// Build validates f and converts it into a Spec.
func (f File) Build() (*Spec, error) {
	if err := fileValidate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSpec, describeValidation(err))
	}
	stage := core.StageFromLen(f.Stage)

	ph, err := ParsePartHeads(strings.Join(f.PartHeads, ","), stage)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}

	frags := make([]Frag, len(f.Fragments))
	for fi, ff := range f.Fragments {
		rows := make([]SkelRow, len(ff.Rows))
		for ri, rf := range ff.Rows {
			r, err := core.ParseRow(rf.Row)
			if err != nil {
				return nil, fmt.Errorf("%w: fragment %d row %d: %w", ErrInvalidSpec, fi, ri, err)
			}
			rows[ri] = SkelRow{
				Row:       r,
				Call:      rf.Call,
				Method:    rf.Method,
				IsLeadEnd: rf.LeadEnd,
				IsProved:  !rf.Excluded && ri != len(ff.Rows)-1,
			}
		}
		frags[fi] = Frag{Rows: rows, X: ff.X, Y: ff.Y, IsMuted: ff.Muted}
	}

	return New(stage, frags, ph)
}

// describeValidation flattens validator output into one line per failed field.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
	}

	return strings.Join(msgs, "; ")
}
