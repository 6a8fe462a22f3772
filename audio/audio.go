// Package audio plays the game's sound cues by name.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every clip is decoded to.
const SampleRate = 44100

// Service keeps every clip decoded in memory. One-shot cues get a fresh
// player per call so they can overlap, looping cues keep a single player.
type Service struct {
	context *audio.Context
	clips   map[string][]byte
	loops   map[string]*audio.Player
}

// NewService decodes every .wav file in dir of fsys. A clip is named after
// its file, without the extension.
func NewService(ctx *audio.Context, fsys fs.FS, dir string) (*Service, error) {
	clips, err := decodeDir(fsys, dir, ctx.SampleRate())
	if err != nil {
		return nil, err
	}
	s := &Service{
		context: ctx,
		clips:   clips,
		loops:   make(map[string]*audio.Player),
	}
	log.Printf("[audio] loaded %d clips: %s", len(s.clips), strings.Join(s.Names(), ", "))
	return s, nil
}

func decodeDir(fsys fs.FS, dir string, sampleRate int) (map[string][]byte, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sounds in %s: %w", dir, err)
	}

	clips := make(map[string][]byte)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(path.Ext(entry.Name()), ".wav") {
			continue
		}
		file := path.Join(dir, entry.Name())
		decoded, err := decodeWAV(fsys, file, sampleRate)
		if err != nil {
			return nil, err
		}
		clips[strings.TrimSuffix(entry.Name(), path.Ext(entry.Name()))] = decoded
	}
	return clips, nil
}

func decodeWAV(fsys fs.FS, file string, sampleRate int) ([]byte, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", file, err)
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", file, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", file, err)
	}
	return decoded, nil
}

// Names lists the loaded clips in order.
func (s *Service) Names() []string {
	names := make([]string, 0, len(s.clips))
	for name := range s.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlayOnce starts the named clip from the beginning.
func (s *Service) PlayOnce(name string) {
	clip, ok := s.clips[name]
	if !ok {
		log.Printf("[audio] unknown sound %q", name)
		return
	}
	s.context.NewPlayerFromBytes(clip).Play()
}

// PlayLooping plays the named clip forever. Calling it again while the loop
// is playing does nothing.
func (s *Service) PlayLooping(name string) {
	if p, ok := s.loops[name]; ok {
		if !p.IsPlaying() {
			p.Play()
		}
		return
	}
	clip, ok := s.clips[name]
	if !ok {
		log.Printf("[audio] unknown sound %q", name)
		return
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(clip), int64(len(clip)))
	p, err := s.context.NewPlayer(loop)
	if err != nil {
		log.Printf("[audio] failed to loop %q: %v", name, err)
		return
	}
	s.loops[name] = p
	p.Play()
}

// Stop halts a looping clip.
func (s *Service) Stop(name string) {
	if p, ok := s.loops[name]; ok {
		p.Pause()
	}
}
