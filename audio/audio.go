// Package audio maps combat cue names to fire-and-forget sound players.
package audio

import (
	"log"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/brawler/assets"
	"github.com/milk9111/brawler/component"
)

// Bank holds one reusable player per cue. Play rewinds and restarts the cue
// unless it is already playing; combat cues are short enough that overlap is
// not worth a player pool.
type Bank struct {
	players map[string]*eaudio.Player
}

var cueFiles = map[string]string{
	component.SoundAttack:           "attack.wav",
	component.SoundCombo:            "combo.wav",
	component.SoundUltimateCharge:   "ultimate_charge.wav",
	component.SoundUltimateExecute:  "ultimate_execute.wav",
	component.SoundUltimateComplete: "ultimate_complete.wav",
}

// NewBank loads every known cue. Cues whose audio is not bundled are skipped
// with a log line; Play on them is a no-op.
func NewBank() *Bank {
	b := &Bank{players: map[string]*eaudio.Player{}}
	for name, file := range cueFiles {
		player, err := assets.LoadAudioPlayer(file)
		if err != nil {
			log.Printf("audio: cue %s (%s) not bundled", name, file)
			continue
		}
		b.players[name] = player
	}
	return b
}

// Play starts a cue at the given volume. Unknown cues are silent no-ops.
func (b *Bank) Play(name string, volume float64) {
	player, ok := b.players[name]
	if !ok || player == nil {
		return
	}
	if player.IsPlaying() {
		return
	}
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", name, err)
		return
	}
	player.Play()
}

// Stop pauses a cue if it is playing.
func (b *Bank) Stop(name string) {
	if player, ok := b.players[name]; ok && player != nil && player.IsPlaying() {
		player.Pause()
	}
}
