// iojson are utilities for writing JSON output from a command line
// interface perspective
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteLine writes obj as a single compact JSON line, for streaming
// one-object-per-line output of list commands.
func WriteLine(w io.Writer, obj any) error {
	bits, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("marshal json line: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteWith writes obj pretty-printed to w; a marshal failure is
// reported on ew instead so callers always produce valid JSON output.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		msg, _ := json.Marshal(err.Error())
		_, err = fmt.Fprintf(ew, `{"message":"marshal error","data":{"json_error":%s}}%s`, msg, "\n")
		return err
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// Write calls WriteWith with [os.Stdout] and [os.Stderr]
func Write(obj any) error {
	return WriteWith(os.Stdout, os.Stderr, obj)
}
