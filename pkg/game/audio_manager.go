package game

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue identifies a short synthesized UI sound.
type Cue string

const (
	// CueClick plays on button activation.
	CueClick Cue = "click"
	// CueComplete plays when a scan finishes.
	CueComplete Cue = "complete"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理应用中的 UI 提示音
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// The app ships no audio assets; cues are short sine tones synthesized
// into 16-bit stereo PCM at startup and cached as players.
type AudioManager struct {
	ctx             *audio.Context
	settingsManager *SettingsManager
	players         map[Cue]*audio.Player
}

const audioSampleRate = 48000

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（采样率需为 audioSampleRate）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		ctx:             ctx,
		settingsManager: sm,
		players:         make(map[Cue]*audio.Player),
	}

	am.players[CueClick] = ctx.NewPlayerFromBytes(tonePCM(audioSampleRate, 880, 60*time.Millisecond))
	am.players[CueComplete] = ctx.NewPlayerFromBytes(tonePCM(audioSampleRate, 660, 180*time.Millisecond))
	return am
}

// Play 播放提示音（受 SoundEnabled / SoundVolume 设置控制）
func (am *AudioManager) Play(cue Cue) bool {
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		if p, ok := am.players[cue]; ok {
			p.SetVolume(settings.SoundVolume)
		}
	}

	player, ok := am.players[cue]
	if !ok {
		return false
	}
	player.Rewind()
	player.Play()
	return true
}

// tonePCM synthesizes a sine tone as interleaved 16-bit little-endian
// stereo PCM with a linear fade-out over the whole duration, so cues end
// without a click.
func tonePCM(sampleRate int, freq float64, d time.Duration) []byte {
	samples := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		fade := 1 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * fade * 0.3
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
