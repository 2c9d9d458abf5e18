//go:build js && wasm

// cmd/wasm/main.go はブラウザで単語カードを描画するエントリーポイントです。
//
//	GOOS=js GOARCH=wasm go build -o web/static/wordbook.wasm ./cmd/wasm
package main

import (
	"context"
	"log/slog"

	"jp_wordbook/internal/browser"
	"jp_wordbook/internal/render"
	"jp_wordbook/internal/speech"
	"jp_wordbook/internal/store"
	"jp_wordbook/internal/words"
)

const (
	listElementID  = "word-list"
	templateID     = "word-card-template"
	readyStateLoading = "loading"
)

func main() {
	logger := slog.New(slog.NewTextHandler(browser.ConsoleWriter{}, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx := context.Background()
	doc := browser.NewDocument()

	list := doc.GetElementByID(listElementID)
	tmpl := doc.TemplateCard(templateID)
	if list == nil || tmpl == nil {
		logger.Error("Word list container or card template not found",
			slog.String("list_id", listElementID), slog.String("template_id", templateID))
		return
	}

	catalog := words.MustLoad()
	progressStore := store.NewProgressStore(browser.LocalStorage{}, logger)
	speaker := speech.NewSpeaker(browser.NewSpeechSynthesis(), browser.WindowAlerter{}, logger)
	renderer := render.NewRenderer(ctx, doc, list, tmpl, progressStore, speaker, logger)

	renderWords := func() {
		if err := renderer.Render(ctx, catalog.All()); err != nil {
			logger.Error("Failed to render words", slog.Any("error", err))
		}
	}

	if doc.ReadyState() == readyStateLoading {
		doc.AddEventListener("DOMContentLoaded", true, renderWords)
	} else {
		renderWords()
	}

	browser.OnBeforeUnload(speaker.Stop)

	// イベントリスナーが生きている間は終了しない
	select {}
}
