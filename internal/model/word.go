// internal/model/word.go
package model

// Word は単語カード1枚分のデータを表します（読み取り専用）
type Word struct {
	ID                   string `json:"id" yaml:"id" validate:"required"`
	Word                 string `json:"word" yaml:"word" validate:"required"`
	WordPronunciation    string `json:"wordPronunciation" yaml:"wordPronunciation" validate:"required"`
	Meaning              string `json:"meaning" yaml:"meaning" validate:"required"`
	Example              string `json:"example" yaml:"example" validate:"required"`
	ExamplePronunciation string `json:"examplePronunciation" yaml:"examplePronunciation" validate:"required"`
}
