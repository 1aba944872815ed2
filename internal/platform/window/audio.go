package window

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/alien-dash/internal/assets"
	"github.com/vovakirdan/alien-dash/internal/config"
)

const sampleRate = 44100

// stream is what both the wav and vorbis decoders return.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// Sounds decodes and plays the game's audio cues. Effects are decoded once
// at load and replayed from memory; music streams as an infinite loop.
type Sounds struct {
	context  *audio.Context
	fsys     fs.FS
	manifest assets.Manifest
	sfxCache map[assets.Sound][]byte
	music    *audio.Player
	sfxVol   float64
	muted    bool
	logger   *log.Logger
}

// audioContext returns the process-wide audio context, creating it on
// first use.
func audioContext() *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// LoadSounds decodes every sound effect in the manifest. The music cue is
// only checked here and decoded when Loop starts it.
func LoadSounds(fsys fs.FS, m assets.Manifest, cfg config.AudioConfig, logger *log.Logger) (*Sounds, error) {
	s := &Sounds{
		context:  audioContext(),
		fsys:     fsys,
		manifest: m,
		sfxCache: make(map[assets.Sound][]byte),
		sfxVol:   cfg.SFXVolume,
		muted:    cfg.Muted,
		logger:   logger,
	}
	for _, snd := range assets.Sounds() {
		if snd == assets.SoundMusic {
			if _, err := s.open(snd); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.preload(snd); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// open reads and decodes the file behind snd.
func (s *Sounds) open(snd assets.Sound) (stream, error) {
	p, err := s.manifest.SoundPath(snd)
	if err != nil {
		return nil, err
	}
	format, err := assets.SoundFormat(p)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("window: read audio file %s: %w", p, err)
	}

	switch format {
	case "ogg":
		st, err := vorbis.DecodeWithSampleRate(s.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("window: decode ogg %s: %w", p, err)
		}
		return st, nil
	default:
		st, err := wav.DecodeWithSampleRate(s.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("window: decode wav %s: %w", p, err)
		}
		return st, nil
	}
}

// preload decodes a sound effect and caches the PCM bytes.
func (s *Sounds) preload(snd assets.Sound) error {
	if _, ok := s.sfxCache[snd]; ok {
		return nil
	}
	st, err := s.open(snd)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(st)
	if err != nil {
		return fmt.Errorf("window: read decoded audio %s: %w", snd, err)
	}
	s.sfxCache[snd] = decoded
	return nil
}

// Play starts a fresh player for a cached effect, so overlapping cues mix.
func (s *Sounds) Play(snd assets.Sound) {
	if s.muted {
		return
	}
	data, ok := s.sfxCache[snd]
	if !ok {
		s.logger.Warn("sound not loaded", "sound", snd)
		return
	}
	p := s.context.NewPlayerFromBytes(data)
	p.SetVolume(s.sfxVol)
	p.Play()
}

// Loop starts snd as background music, replacing any music already playing.
func (s *Sounds) Loop(snd assets.Sound, volume float64) {
	if s.muted {
		return
	}
	st, err := s.open(snd)
	if err != nil {
		s.logger.Error("music unavailable", "sound", snd, "err", err)
		return
	}
	p, err := s.context.NewPlayer(audio.NewInfiniteLoop(st, st.Length()))
	if err != nil {
		s.logger.Error("music player", "sound", snd, "err", err)
		return
	}
	if s.music != nil {
		s.music.Close()
	}
	p.SetVolume(volume)
	p.Play()
	s.music = p
}

// Close stops the music.
func (s *Sounds) Close() error {
	if s.music == nil {
		return nil
	}
	err := s.music.Close()
	s.music = nil
	return err
}
