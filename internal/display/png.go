package display

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pidash/pidash/internal/errors"
)

// PNGSink writes each presented frame to a PNG file. The write is atomic
// (temp file + rename) so a reader polling the path never sees a torn frame.
type PNGSink struct {
	path string
}

// NewPNGSink creates a sink writing frames to path.
func NewPNGSink(path string) *PNGSink {
	return &PNGSink{path: path}
}

// Present implements Sink.
func (s *PNGSink) Present(frame *image.RGBA) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".pidash-frame-*")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrDisplay,
			"Cannot create frame file in "+dir,
			"Check the output directory exists and is writable")
	}
	tmpName := tmp.Name()

	if err := png.Encode(tmp, frame); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrDisplay, "PNG encode failed", "")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrDisplay, "Cannot finish writing frame", "")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.WrapWithCode(err, errors.ErrDisplay,
			"Cannot move frame into place at "+s.path, "")
	}
	return nil
}

// Close implements Sink.
func (s *PNGSink) Close() error { return nil }
