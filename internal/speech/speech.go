// Package speech は日本語の読み上げを扱います。
package speech

import (
	"log/slog"
	"strings"
)

const (
	Lang  = "ja-JP"
	Rate  = 0.95
	Pitch = 1.1

	// UnsupportedMessage は読み上げ機能が無い環境で表示するメッセージ
	UnsupportedMessage = "이 브라우저에서는 음성 재생을 지원하지 않습니다."
)

// Voice はプラットフォームが提供する音声
type Voice struct {
	Name string
	Lang string
}

// Utterance は1回分の読み上げリクエスト
type Utterance struct {
	Text  string
	Lang  string
	Rate  float64
	Pitch float64
	Voice *Voice // nil ならデフォルトの音声
}

// Synthesizer はプラットフォームの音声合成キュー（ブラウザの speechSynthesis）
type Synthesizer interface {
	Cancel()
	Voices() []Voice
	Speak(u Utterance)
}

// Alerter はユーザーにブロッキングなメッセージを出します（window.alert）
type Alerter interface {
	Alert(msg string)
}

// Speaker は直前の読み上げを止めてから新しいテキストを読み上げます
type Speaker struct {
	synth  Synthesizer
	alert  Alerter
	logger *slog.Logger
}

// NewSpeaker は Speaker を作ります。synth が nil の場合、Speak はアラートを出すだけになります
func NewSpeaker(synth Synthesizer, alert Alerter, logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Speaker{synth: synth, alert: alert, logger: logger}
}

// Speak は text を日本語で読み上げます。再生中のものはキャンセルされます
func (s *Speaker) Speak(text string) {
	if s.synth == nil {
		s.logger.Warn("Speech synthesis is not available")
		if s.alert != nil {
			s.alert.Alert(UnsupportedMessage)
		}
		return
	}

	u := Utterance{
		Text:  text,
		Lang:  Lang,
		Rate:  Rate,
		Pitch: Pitch,
		Voice: FindJapaneseVoice(s.synth.Voices()),
	}

	s.synth.Cancel()
	s.synth.Speak(u)
}

// Stop は再生中の読み上げを止めます（ページ離脱時）
func (s *Speaker) Stop() {
	if s.synth != nil {
		s.synth.Cancel()
	}
}

// FindJapaneseVoice は言語タグが "ja" で始まる最初の音声を返します。無ければ nil
func FindJapaneseVoice(voices []Voice) *Voice {
	for i := range voices {
		if strings.HasPrefix(voices[i].Lang, "ja") {
			v := voices[i]
			return &v
		}
	}
	return nil
}
