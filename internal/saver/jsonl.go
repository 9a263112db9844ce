package saver

import (
	"encoding/json"
	"io"
	"os"

	"hl-data/internal/model"
)

// JSONLSaver lưu events dưới dạng newline-delimited JSON, one
// self-contained object per line. Overwrites any existing file.
type JSONLSaver struct{}

func (JSONLSaver) Extension() string { return "jsonl" }

func (JSONLSaver) Save(events []model.L2Event, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErr("create "+path, err)
	}
	defer f.Close()
	if err := encodeLines(f, events); err != nil {
		return ioErr("write "+path, err)
	}
	return nil
}

// encodeLines writes one compact JSON object per line. json.Encoder
// terminates every value with a newline, which is exactly the JSONL frame.
func encodeLines(w io.Writer, events []model.L2Event) error {
	enc := json.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
