package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/ja"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

// jsonタグ名 -> 日本語のフィールド名
var fieldNameTranslations = map[string]string{
	"id":                   "単語ID",
	"word":                 "単語",
	"wordPronunciation":    "単語の発音",
	"meaning":              "意味",
	"example":              "例文",
	"examplePronunciation": "例文の発音",
	"checked":              "チェック状態",
	"count":                "暗記ステップ数",
}

func init() {
	Validator = validator.New()

	// エラーのフィールド名は jsonタグ名で返す
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// デフォルトの翻訳を上書き
	overrideTranslation("required", "{0}は必須項目です。")
	overrideTranslation("min", "{0}は{1}以上で指定してください。")
	overrideTranslation("max", "{0}は{1}以下で指定してください。")
}

// overrideTranslation はタグのメッセージテンプレートを登録します。
// {0} に日本語のフィールド名、{1} にタグのパラメータが入ります。
func overrideTranslation(tag, msg string) {
	err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
		return ut.Add(tag, msg, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, translateFieldName(fe.Field()), fe.Param())
		return t
	})
	if err != nil {
		log.Fatalf("register translation %q: %v", tag, err)
	}
}

func translateFieldName(field string) string {
	if translated, ok := fieldNameTranslations[field]; ok {
		return translated
	}
	return field
}
