package saver

import (
	"os"

	"github.com/pierrec/lz4/v4"

	"hl-data/internal/model"
)

// LZ4JSONLSaver writes the same line encoding as JSONLSaver inside an LZ4
// frame. The engine's L2 ingest path decompresses frame-format .jsonl.lz4
// files transparently.
type LZ4JSONLSaver struct{}

func (LZ4JSONLSaver) Extension() string { return "jsonl.lz4" }

func (LZ4JSONLSaver) Save(events []model.L2Event, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return ioErr("create "+path, err)
	}
	defer f.Close()

	zw := lz4.NewWriter(f)
	if err := encodeLines(zw, events); err != nil {
		zw.Close()
		return ioErr("write "+path, err)
	}
	// Close flushes the frame trailer; without it the file is truncated.
	if err := zw.Close(); err != nil {
		return ioErr("flush "+path, err)
	}
	return nil
}
