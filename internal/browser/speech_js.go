//go:build js && wasm

package browser

import (
	"syscall/js"

	"jp_wordbook/internal/speech"
)

// SpeechSynthesis は window.speechSynthesis
type SpeechSynthesis struct {
	v js.Value
}

// NewSpeechSynthesis はブラウザが speechSynthesis を持たない場合 nil を返します
func NewSpeechSynthesis() speech.Synthesizer {
	v := js.Global().Get("speechSynthesis")
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	return &SpeechSynthesis{v: v}
}

func (s *SpeechSynthesis) Cancel() { s.v.Call("cancel") }

func (s *SpeechSynthesis) Voices() []speech.Voice {
	list := s.v.Call("getVoices")
	n := list.Get("length").Int()
	voices := make([]speech.Voice, 0, n)
	for i := 0; i < n; i++ {
		v := list.Index(i)
		voices = append(voices, speech.Voice{Name: v.Get("name").String(), Lang: v.Get("lang").String()})
	}
	return voices
}

func (s *SpeechSynthesis) Speak(u speech.Utterance) {
	utt := js.Global().Get("SpeechSynthesisUtterance").New(u.Text)
	utt.Set("lang", u.Lang)
	utt.Set("rate", u.Rate)
	utt.Set("pitch", u.Pitch)
	if u.Voice != nil {
		// getVoices() が返すオブジェクトそのものを渡す必要がある
		list := s.v.Call("getVoices")
		for i := 0; i < list.Get("length").Int(); i++ {
			v := list.Index(i)
			if v.Get("name").String() == u.Voice.Name && v.Get("lang").String() == u.Voice.Lang {
				utt.Set("voice", v)
				break
			}
		}
	}
	s.v.Call("speak", utt)
}

// WindowAlerter は window.alert
type WindowAlerter struct{}

func (WindowAlerter) Alert(msg string) {
	js.Global().Call("alert", msg)
}

// OnBeforeUnload はページ離脱時に fn を呼びます
func OnBeforeUnload(fn func()) js.Func {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	js.Global().Call("addEventListener", "beforeunload", f)
	return f
}
