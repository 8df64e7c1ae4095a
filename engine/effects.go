package engine

// Effect is a fire-and-forget signal for audio and visual collaborators
type Effect uint8

const (
	EffectJump Effect = iota
	EffectDoubleJump
	EffectLand
	EffectCollect
	EffectCrash
	EffectRunStart
	EffectPause
	EffectResume
	effectCount
)

var effectNames = [effectCount]string{
	"jump", "double_jump", "land", "collect", "crash", "run_start", "pause", "resume",
}

func (e Effect) String() string {
	if e < effectCount {
		return effectNames[e]
	}
	return "unknown"
}

// EffectSink receives effect signals; implementations must not block the tick
type EffectSink interface {
	Emit(Effect)
}

// EffectFunc adapts a function to EffectSink
type EffectFunc func(Effect)

func (f EffectFunc) Emit(e Effect) { f(e) }

// MultiSink fans a signal out to every non-nil sink in order
type MultiSink []EffectSink

func (m MultiSink) Emit(e Effect) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

type nopSink struct{}

func (nopSink) Emit(Effect) {}

// NopSink discards every signal
var NopSink EffectSink = nopSink{}
