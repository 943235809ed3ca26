package board

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/kanban-go/internal/utils"
)

// Snapshot is the persisted form of a board: three ordered label lists.
type Snapshot struct {
	Todo       []string `json:"todo" yaml:"todo" toml:"todo"`
	InProgress []string `json:"inProgress" yaml:"inProgress" toml:"inProgress"`
	Done       []string `json:"done" yaml:"done" toml:"done"`
}

// EmptySnapshot returns a snapshot with three empty, non-nil lists so it
// encodes as arrays rather than nulls.
func EmptySnapshot() Snapshot {
	return Snapshot{Todo: []string{}, InProgress: []string{}, Done: []string{}}
}

// Column returns the labels for col. The result is never nil.
func (s Snapshot) Column(col Column) []string {
	var labels []string
	switch col {
	case ColumnTodo:
		labels = s.Todo
	case ColumnInProgress:
		labels = s.InProgress
	case ColumnDone:
		labels = s.Done
	}
	if labels == nil {
		return []string{}
	}
	return labels
}

func (s *Snapshot) set(col Column, labels []string) {
	switch col {
	case ColumnTodo:
		s.Todo = labels
	case ColumnInProgress:
		s.InProgress = labels
	case ColumnDone:
		s.Done = labels
	}
}

// Normalize replaces nil lists with empty ones.
func (s Snapshot) Normalize() Snapshot {
	for _, col := range Columns() {
		s.set(col, s.Column(col))
	}
	return s
}

// Len returns the total number of labels.
func (s Snapshot) Len() int {
	return len(s.Todo) + len(s.InProgress) + len(s.Done)
}

// Encode serialises the snapshot to compact JSON.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s.Normalize())
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// ValidationError reports why stored text is not a usable snapshot.
type ValidationError struct {
	Path string // dotted path to the offending value, empty for the root
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

const schemaURL = "kanban://snapshot.schema.json"

// SchemaJSON is the JSON Schema every stored snapshot must satisfy.
const SchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "kanban board snapshot",
  "type": "object",
  "properties": {
    "todo":       {"type": ["array", "null"], "items": {"type": "string"}},
    "inProgress": {"type": ["array", "null"], "items": {"type": "string"}},
    "done":       {"type": ["array", "null"], "items": {"type": "string"}}
  }
}`

var snapshotSchema = jsonschema.MustCompileString(schemaURL, SchemaJSON)

// Decode parses and validates raw snapshot text.
func Decode(raw string) (Snapshot, error) {
	if strings.TrimSpace(raw) == "" {
		return EmptySnapshot(), &ValidationError{Err: errors.New("empty input")}
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return EmptySnapshot(), &ValidationError{Err: fmt.Errorf("parse snapshot: %w", err)}
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return EmptySnapshot(), schemaError(err)
	}

	var s Snapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return EmptySnapshot(), &ValidationError{Err: fmt.Errorf("decode snapshot: %w", err)}
	}
	return s.Normalize(), nil
}

// DecodeValue validates an already-decoded document, for formats other than
// JSON that unmarshal into generic maps and slices.
func DecodeValue(doc interface{}) (Snapshot, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return EmptySnapshot(), &ValidationError{Err: fmt.Errorf("convert snapshot: %w", err)}
	}
	return Decode(string(data))
}

// Parse is the lenient form of Decode used when loading a board: absent or
// invalid text yields an empty snapshot. The error, if any, is returned for
// logging only.
func Parse(raw string, ok bool) (Snapshot, error) {
	if !ok {
		return EmptySnapshot(), nil
	}
	s, err := Decode(raw)
	if err != nil {
		return EmptySnapshot(), err
	}
	return s, nil
}

func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &ValidationError{Err: err}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{
		Path: utils.JSONPointerToPath(ve.InstanceLocation),
		Err:  errors.New(ve.Message),
	}
}
