package activitylog

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var entryJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// ExportJSONLines writes all entries to w, one JSON object per line, in chronological order.
// Operation kinds are written by name, e.g. {"kind":"BORROW",...}.
func (l *Log) ExportJSONLines(w io.Writer) error {
	encoder := entryJSON.NewEncoder(w)

	for _, entry := range l.Entries() {
		if err := encoder.Encode(entry); err != nil {
			return errors.Join(ErrExportFailed, err)
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler, encoding the log as a JSON array of entries.
func (l *Log) MarshalJSON() ([]byte, error) {
	data, err := entryJSON.Marshal(l.Entries())
	if err != nil {
		return nil, errors.Join(ErrExportFailed, err)
	}

	return data, nil
}

// EntriesFromJSONLines reads entries written by ExportJSONLines.
func EntriesFromJSONLines(r io.Reader) (Entries, error) {
	decoder := entryJSON.NewDecoder(r)
	entries := make(Entries, 0)

	for decoder.More() {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
