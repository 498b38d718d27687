// Package dayone provides the Day One export schema, decoding, and the
// per-entry derivations used to render entries as org-mode outline nodes.
package dayone

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chee/do2org/internal/output"
)

// Metadata describes the export format version recorded in a journal file.
// The version is informational only; nothing downstream branches on it.
type Metadata struct {
	Version string `json:"version"`
}

// Journal is the root object of a Day One JSON export: the export metadata
// plus every entry in the order the file lists them.
type Journal struct {
	Metadata Metadata `json:"metadata"`
	Entries  []*Entry `json:"entries"`
}

// journalShell mirrors the journal's top level with presence-detecting
// pointers and raw entries, so each entry can be decoded individually and
// failures can name the entry that did not match.
type journalShell struct {
	Metadata *struct {
		Version *string `json:"version"`
	} `json:"metadata"`
	Entries []json.RawMessage `json:"entries"`
}

// DecodeJournal decodes a Day One JSON export.
// Unknown fields are ignored; missing required fields, malformed JSON, and
// timestamps outside the export's fixed layout are decode errors naming the
// offending field or entry.
func DecodeJournal(data []byte) (*Journal, error) {
	var shell journalShell
	if err := json.Unmarshal(data, &shell); err != nil {
		return nil, output.NewDecodeErrorWithCause("parsing journal: "+err.Error(), err)
	}

	var missing []string
	switch {
	case shell.Metadata == nil:
		missing = append(missing, "metadata")
	case shell.Metadata.Version == nil:
		missing = append(missing, "metadata.version")
	}
	if shell.Entries == nil {
		missing = append(missing, "entries")
	}
	if len(missing) > 0 {
		return nil, output.NewDecodeError("journal missing required fields: " + strings.Join(missing, ", "))
	}

	journal := &Journal{
		Metadata: Metadata{Version: *shell.Metadata.Version},
		Entries:  make([]*Entry, 0, len(shell.Entries)),
	}
	for i, raw := range shell.Entries {
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, output.NewDecodeErrorWithCause(fmt.Sprintf("entry %d: %v", i, err), err)
		}
		journal.Entries = append(journal.Entries, &entry)
	}
	return journal, nil
}
