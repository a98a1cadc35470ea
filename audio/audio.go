// Package audio synthesizes the game's sound effects and background drone
// at startup. There are no audio assets; everything is generated PCM.
package audio

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 22050

// Player owns the audio context and the pre-rendered effect buffers. Effects
// spawn a fresh byte player per play so they can overlap.
type Player struct {
	ctx   *audio.Context
	jump  []byte
	death []byte
	blip  []byte
	music *audio.Player
}

func NewPlayer() *Player {
	p := &Player{ctx: audio.NewContext(sampleRate)}
	p.jump = sweep(0.15, 300, 800, riseEnv)
	p.death = sweep(0.5, 800, 100, fallEnv)
	p.blip = glitchBlip()
	return p
}

// riseEnv decays slowly: bright attack for jumps.
func riseEnv(t float64) float64 { return math.Sqrt(1 - t) }

// fallEnv decays fast: a thud for deaths.
func fallEnv(t float64) float64 { return (1 - t) * (1 - t) }

// sweep renders a sine sweep from f0 to f1 Hz shaped by env, as 16-bit LE
// stereo PCM.
func sweep(duration, f0, f1 float64, env func(float64) float64) []byte {
	n := int(duration * sampleRate)
	var buf bytes.Buffer
	buf.Grow(n * 4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := f0 + (f1-f0)*t
		v := 24000 * env(t) * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
		writeSample(&buf, int16(v))
	}
	return buf.Bytes()
}

// glitchBlip is the narrator's voice: a short FM-wobbled drone per typed
// character.
func glitchBlip() []byte {
	const duration = 0.06
	n := int(duration * sampleRate)
	var buf bytes.Buffer
	buf.Grow(n * 4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := 140 + 60*math.Sin(2*math.Pi*40*t)
		env := 28000 * math.Sqrt(1-t)
		v := env * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
		writeSample(&buf, int16(v))
	}
	return buf.Bytes()
}

// droneLoop renders four seconds of layered low sines with a slow volume
// wobble; the music player loops it forever.
func droneLoop() []byte {
	const duration = 4.0
	n := int(duration * sampleRate)
	var buf bytes.Buffer
	buf.Grow(n * 4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		s := 0.4 * math.Sin(2*math.Pi*55*float64(i)/sampleRate)
		s += 0.3 * math.Sin(2*math.Pi*110*float64(i)/sampleRate)
		s += 0.2 * math.Sin(2*math.Pi*82.4*float64(i)/sampleRate)
		s *= 0.8 + 0.2*math.Sin(2*math.Pi*0.5*t)
		writeSample(&buf, int16(s*14000))
	}
	return buf.Bytes()
}

func writeSample(buf *bytes.Buffer, v int16) {
	lo := byte(v)
	hi := byte(v >> 8)
	// stereo: same sample both channels
	buf.WriteByte(lo)
	buf.WriteByte(hi)
	buf.WriteByte(lo)
	buf.WriteByte(hi)
}

func (p *Player) play(pcm []byte) {
	if p.ctx == nil || len(pcm) == 0 {
		return
	}
	sp := p.ctx.NewPlayerFromBytes(pcm)
	sp.Play()
}

func (p *Player) PlayJump()  { p.play(p.jump) }
func (p *Player) PlayDeath() { p.play(p.death) }
func (p *Player) PlayBlip()  { p.play(p.blip) }

// StartMusic begins the looping background drone. Safe to call once;
// repeated calls are no-ops while the loop is playing.
func (p *Player) StartMusic() error {
	if p.music != nil && p.music.IsPlaying() {
		return nil
	}
	pcm := droneLoop()
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	mp, err := p.ctx.NewPlayer(loop)
	if err != nil {
		return err
	}
	mp.SetVolume(0.5)
	mp.Play()
	p.music = mp
	return nil
}
