package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for issue codes.
// data provides optional parameters embedded in the message through {name}
// placeholders (for example "path" or "segment").
type Translator interface {
	Message(code string, data map[string]string) string
}

var dictionaries = map[string]map[string]string{
	"en": {
		"parse_error":         "invalid JSON: {detail}",
		"empty_path":          "path is empty",
		"not_container":       "value at {path} is not an object or array",
		"index_out_of_bounds": "array index out of bounds at {path}",
		"not_found":           "path {path} not found",
		"invalid_type":        "{subject} is not a valid JSON {want}",
		"duplicate_key":       "duplicate key at {path}",
		"truncated":           "input truncated",
		"missing_argument":    "{subject} cannot be empty",
		"invalid_index":       "invalid index {index}",
	},
	"ja": {
		"parse_error":         "JSONの解析に失敗しました: {detail}",
		"empty_path":          "パスが空です",
		"not_container":       "{path} の値はオブジェクトでも配列でもありません",
		"index_out_of_bounds": "{path} の配列インデックスが範囲外です",
		"not_found":           "パス {path} が見つかりません",
		"invalid_type":        "{subject} は有効なJSONの{want}ではありません",
		"duplicate_key":       "{path} でキーが重複しています",
		"truncated":           "入力が打ち切られました",
		"missing_argument":    "{subject} は空にできません",
		"invalid_index":       "インデックス {index} は不正です",
	},
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// ForLanguage returns the built-in Translator for lang ("en"/"ja"). Unknown
// languages fall back to English.
func ForLanguage(lang string) Translator {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) { SetTranslator(ForLanguage(lang)) }

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). nil restores English.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// Current returns the process-wide Translator.
func Current() Translator {
	mu.RLock()
	defer mu.RUnlock()
	return currentTranslator
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return Current().Message(code, data) }
