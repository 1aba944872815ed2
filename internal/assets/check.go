package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder for DecodeConfig
	"io/fs"
	"path"
	"strings"
)

// Entry describes one validated manifest entry.
type Entry struct {
	Kind   string // "sprite" or "sound"
	Name   string
	Path   string
	Detail string // e.g. "66x92 png" or "wav"
}

// Check verifies that every sprite and sound in m exists in fsys and looks
// decodable: images must decode their header, sounds must be WAV or Ogg.
// All problems are reported together.
func Check(fsys fs.FS, m Manifest) ([]Entry, error) {
	var (
		entries []Entry
		errs    []error
	)

	for _, key := range m.Unknown() {
		errs = append(errs, fmt.Errorf("assets: unknown manifest key %q", key))
	}

	for _, s := range Sprites() {
		p, err := m.SpritePath(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		detail, err := checkImage(fsys, p)
		if err != nil {
			errs = append(errs, fmt.Errorf("assets: sprite %q: %w", s, err))
			continue
		}
		entries = append(entries, Entry{Kind: "sprite", Name: s.String(), Path: p, Detail: detail})
	}

	for _, s := range Sounds() {
		p, err := m.SoundPath(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		detail, err := checkSound(fsys, p)
		if err != nil {
			errs = append(errs, fmt.Errorf("assets: sound %q: %w", s, err))
			continue
		}
		entries = append(entries, Entry{Kind: "sound", Name: s.String(), Path: p, Detail: detail})
	}

	return entries, errors.Join(errs...)
}

func checkImage(fsys fs.FS, p string) (string, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", p, err)
	}
	return fmt.Sprintf("%dx%d %s", cfg.Width, cfg.Height, format), nil
}

// SoundFormat reports "wav" or "ogg" from the file extension.
func SoundFormat(p string) (string, error) {
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		return "wav", nil
	case ".ogg":
		return "ogg", nil
	default:
		return "", fmt.Errorf("unsupported audio format %q", ext)
	}
}

func checkSound(fsys fs.FS, p string) (string, error) {
	format, err := SoundFormat(p)
	if err != nil {
		return "", err
	}
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", p, err)
	}

	switch format {
	case "wav":
		if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
			return "", fmt.Errorf("%s is not a RIFF/WAVE file", p)
		}
	case "ogg":
		if len(data) < 4 || string(data[0:4]) != "OggS" {
			return "", fmt.Errorf("%s is not an Ogg file", p)
		}
	}
	return format, nil
}
