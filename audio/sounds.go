package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/neon-runner/engine"
	"github.com/lixenwraith/neon-runner/parameter"
)

// note is one enveloped tone with a release over its second half
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(tone(freq, d, wave, rate), d, parameter.EffectAttack, d/2, rate)
}

// chime is a sine that decays over its whole length
func chime(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(tone(freq, d, WaveSine, rate), d, parameter.EffectAttack, d, rate)
}

// blip is the rising two-note jump figure
func blip(f1, f2 float64, rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		note(f1, parameter.JumpNote1Duration, WaveSquare, rate),
		delayed(note(f2, parameter.JumpNote2Duration, WaveSquare, rate), parameter.JumpNote2Delay, rate),
	)
}

// CreateJumpSound is the ground jump blip
func CreateJumpSound(rate beep.SampleRate, master float64) beep.Streamer {
	return newVolume(blip(parameter.JumpNote1Freq, parameter.JumpNote2Freq, rate), parameter.JumpVolume*master)
}

// CreateDoubleJumpSound is the jump blip pitched up
func CreateDoubleJumpSound(rate beep.SampleRate, master float64) beep.Streamer {
	return newVolume(blip(parameter.DoubleJumpNote1Freq, parameter.DoubleJumpNote2Freq, rate), parameter.JumpVolume*master)
}

// CreateCollectSound is a two-chime pickup
func CreateCollectSound(rate beep.SampleRate, master float64) beep.Streamer {
	s := beep.Mix(
		chime(parameter.CollectNote1Freq, parameter.CollectNote1Duration, rate),
		delayed(chime(parameter.CollectNote2Freq, parameter.CollectNote2Duration, rate), parameter.CollectNote2Delay, rate),
	)
	return newVolume(s, parameter.CollectVolume*master)
}

// CreateCrashSound layers a saw and a lower square
func CreateCrashSound(rate beep.SampleRate, master float64) beep.Streamer {
	saw := tone(parameter.CrashSawFreq, parameter.CrashSawDuration, WaveSaw, rate)
	sq := tone(parameter.CrashSquareFreq, parameter.CrashSquareDuration, WaveSquare, rate)
	s := beep.Mix(
		newVolume(NewEnvelope(saw, parameter.CrashSawDuration, parameter.EffectAttack, parameter.CrashSawDuration, rate), 0.6),
		newVolume(NewEnvelope(sq, parameter.CrashSquareDuration, parameter.EffectAttack, parameter.CrashSquareDuration, rate), 0.4),
	)
	return newVolume(s, parameter.CrashVolume*master)
}

// CreateLandSound is a short sine thump
func CreateLandSound(rate beep.SampleRate, master float64) beep.Streamer {
	return newVolume(note(parameter.LandFreq, parameter.LandDuration, WaveSine, rate), parameter.LandVolume*master)
}

// SoundFor returns the streamer for an effect, or nil when the effect is silent
func SoundFor(e engine.Effect, rate beep.SampleRate, master float64) beep.Streamer {
	switch e {
	case engine.EffectJump:
		return CreateJumpSound(rate, master)
	case engine.EffectDoubleJump:
		return CreateDoubleJumpSound(rate, master)
	case engine.EffectCollect:
		return CreateCollectSound(rate, master)
	case engine.EffectCrash:
		return CreateCrashSound(rate, master)
	case engine.EffectLand:
		return CreateLandSound(rate, master)
	}
	return nil
}
