// Package render は単語カードを描画し、読み上げ・例文表示・暗記チェックを結び付けます。
package render

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"jp_wordbook/internal/dom"
	"jp_wordbook/internal/model"
)

// テンプレート内の data-role
const (
	RoleSpeakWord     = "speak-word"
	RoleWordPron      = "word-pron"
	RoleMeaning       = "meaning"
	RoleMemory        = "memory"
	RoleToggleExample = "toggle-example"
	RoleExample       = "example"
	RoleExampleJP     = "example-jp"
	RoleExamplePron   = "example-pron"
	RoleAudioButton   = "audio-button"
)

// 例文ボタンのラベル
const (
	LabelShowExample = "예문 보기"
	LabelHideExample = "예문 숨기기"
)

// Speaker は読み上げ
type Speaker interface {
	Speak(text string)
}

// ProgressStore は進捗の読み書き
type ProgressStore interface {
	Load(ctx context.Context) model.Progress
	Save(ctx context.Context, progress model.Progress)
}

// Renderer は単語リストをコンテナに描画します。
// 進捗は生成時に1回だけ読み込み、変更のたびにマップ全体を保存します。
type Renderer struct {
	doc       dom.Document
	container dom.Element
	template  dom.Element
	store     ProgressStore
	speaker   Speaker
	progress  model.Progress
	logger    *slog.Logger
}

func NewRenderer(ctx context.Context, doc dom.Document, container, template dom.Element, store ProgressStore, speaker Speaker, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		doc:       doc,
		container: container,
		template:  template,
		store:     store,
		speaker:   speaker,
		progress:  store.Load(ctx),
		logger:    logger,
	}
}

// Progress は現在の進捗のコピーを返します
func (r *Renderer) Progress() model.Progress {
	return r.progress.Clone()
}

// Render はコンテナを空にして、すべての単語のカードを作り直します
func (r *Renderer) Render(ctx context.Context, words []model.Word) error {
	r.container.Clear()
	for _, w := range words {
		card := r.template.CloneNode()
		if err := r.BindCard(ctx, card, w); err != nil {
			return err
		}
		r.container.AppendChild(card)
	}
	r.logger.DebugContext(ctx, "Rendered word cards", slog.Int("count", len(words)))
	return nil
}

// BindCard はテンプレートを複製したカードに単語の内容を入れ、イベントを登録します
func (r *Renderer) BindCard(ctx context.Context, card dom.Element, w model.Word) error {
	els, err := lookupRoles(card)
	if err != nil {
		return fmt.Errorf("word %q: %w", w.ID, err)
	}

	els[RoleSpeakWord].SetText(w.Word)
	els[RoleWordPron].SetText(w.WordPronunciation)
	els[RoleMeaning].SetText(w.Meaning)
	els[RoleExampleJP].SetText(w.Example)
	els[RoleExamplePron].SetText(w.ExamplePronunciation)

	r.appendMemoryCheckboxes(ctx, els[RoleMemory], w.ID)

	speakWord := func(*dom.Event) { r.speaker.Speak(w.Word) }
	wordText := els[RoleSpeakWord]
	wordText.AddEventListener("click", speakWord)
	wordText.AddEventListener("keydown", func(e *dom.Event) {
		if e.Key == "Enter" || e.Key == " " {
			speakWord(e)
			e.PreventDefault()
		}
	})
	els[RoleAudioButton].AddEventListener("click", speakWord)

	toggle, example := els[RoleToggleExample], els[RoleExample]
	toggle.AddEventListener("click", func(*dom.Event) {
		if example.HasAttribute("hidden") {
			example.RemoveAttribute("hidden")
			toggle.SetAttribute("aria-expanded", "true")
			toggle.SetText(LabelHideExample)
			r.speaker.Speak(w.Example)
			return
		}
		example.SetAttribute("hidden", "")
		toggle.SetAttribute("aria-expanded", "false")
		toggle.SetText(LabelShowExample)
	})
	return nil
}

// appendMemoryCheckboxes は暗記ステップのチェックボックスを MemorySteps 個追加します
func (r *Renderer) appendMemoryCheckboxes(ctx context.Context, memory dom.Element, wordID string) {
	checked := r.progress.Count(wordID)
	for step := 1; step <= model.MemorySteps; step++ {
		label := r.doc.CreateElement("label")
		label.SetAttribute("class", "memory-step")

		box := r.doc.CreateElement("input")
		box.SetAttribute("type", "checkbox")
		box.SetAttribute("name", wordID+"-memory-"+strconv.Itoa(step))
		box.SetChecked(step <= checked)

		box.AddEventListener("change", func(*dom.Event) {
			r.onMemoryChange(ctx, memory, wordID, step, box.Checked())
		})

		label.AppendChild(box)
		memory.AppendChild(label)
	}
}

// onMemoryChange はステップ数を更新して保存し、全チェックボックスを揃えます
func (r *Renderer) onMemoryChange(ctx context.Context, memory dom.Element, wordID string, step int, checked bool) {
	count := model.NextMemoryCount(step, checked)
	r.progress.Set(wordID, count)
	r.store.Save(ctx, r.progress)

	states := model.MemoryStepStates(count)
	for i, box := range memory.Checkboxes() {
		if i < len(states) {
			box.SetChecked(states[i])
		}
	}
	r.logger.DebugContext(ctx, "Memory step changed", slog.String("word_id", wordID), slog.Int("step", step), slog.Int("count", count))
}

var requiredRoles = []string{
	RoleSpeakWord, RoleWordPron, RoleMeaning, RoleMemory, RoleToggleExample,
	RoleExample, RoleExampleJP, RoleExamplePron, RoleAudioButton,
}

func lookupRoles(card dom.Element) (map[string]dom.Element, error) {
	els := make(map[string]dom.Element, len(requiredRoles))
	for _, role := range requiredRoles {
		el := card.QueryRole(role)
		if el == nil {
			return nil, fmt.Errorf("template element [data-role=%q] not found", role)
		}
		els[role] = el
	}
	return els, nil
}
