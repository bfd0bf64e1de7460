package main

import (
	"encoding/json"
	"io"

	gerrors "github.com/go-faster/errors"
)

func writeJSONLine(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return withCode(exitIO, gerrors.Wrap(err, "json encode"))
	}
	return nil
}
