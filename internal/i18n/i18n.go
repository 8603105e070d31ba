package i18n

import "golang.org/x/text/language"

// supported lists the catalog languages in matcher priority order.
var supported = []language.Tag{
	language.Japanese,
	language.English,
	language.SimplifiedChinese,
	language.TraditionalChinese,
}

var matcher = language.NewMatcher(supported)

// Translator resolves message keys against a single language catalog.
type Translator struct {
	tag      language.Tag
	messages map[string]string
}

// New builds a Translator for the given preference string, which may be
// a short code from configuration ("ja", "en", "zh-Hans", "zh-Hant") or
// any BCP 47 tag. Unparseable or unsupported preferences resolve to
// Japanese.
func New(pref string) *Translator {
	tag, err := language.Parse(pref)
	if err != nil {
		tag = language.Japanese
	}
	// The matcher can still resolve an unrelated language (e.g. "fr" to
	// English) with no real confidence. Treat that as unsupported.
	_, idx, conf := matcher.Match(tag)
	resolved := supported[idx]
	if conf == language.No {
		resolved = language.Japanese
	}

	msgs, ok := catalogs[resolved.String()]
	if !ok {
		resolved = language.Japanese
		msgs = catalogs[resolved.String()]
	}
	return &Translator{tag: resolved, messages: msgs}
}

// Tag reports the resolved catalog language.
func (t *Translator) Tag() language.Tag { return t.tag }

// T returns the localized message for key. Missing keys fall back to
// the English catalog, then to the key itself so the UI never renders
// an empty label.
func (t *Translator) T(key string) string {
	if s, ok := t.messages[key]; ok {
		return s
	}
	if s, ok := catalogs[language.English.String()][key]; ok {
		return s
	}
	return key
}

// Supported returns the preference codes accepted in configuration.
func Supported() []string {
	codes := make([]string, len(supported))
	for i, tag := range supported {
		codes[i] = tag.String()
	}
	return codes
}

var catalogs = map[string]map[string]string{
	"ja": {
		"app.title":          "コンボナビ",
		"overlay.step":       "手順",
		"overlay.hold":       "長押し",
		"overlay.memo":       "メモ",
		"game.running":       "ゲーム起動中",
		"game.not_running":   "ゲーム未起動",
		"combo.none":         "コンボ未読み込み",
		"settings.title":     "設定",
		"settings.language":  "言語",
		"settings.opacity":   "不透明度",
		"settings.combofile": "コンボファイル",
	},
	"en": {
		"app.title":          "ComboNavi",
		"overlay.step":       "Step",
		"overlay.hold":       "Hold",
		"overlay.memo":       "Memo",
		"game.running":       "Game running",
		"game.not_running":   "Game not running",
		"combo.none":         "No combo loaded",
		"settings.title":     "Settings",
		"settings.language":  "Language",
		"settings.opacity":   "Opacity",
		"settings.combofile": "Combo file",
	},
	"zh-Hans": {
		"app.title":          "连招导航",
		"overlay.step":       "步骤",
		"overlay.hold":       "长按",
		"overlay.memo":       "备注",
		"game.running":       "游戏运行中",
		"game.not_running":   "游戏未运行",
		"combo.none":         "未加载连招",
		"settings.title":     "设置",
		"settings.language":  "语言",
		"settings.opacity":   "不透明度",
		"settings.combofile": "连招文件",
	},
	"zh-Hant": {
		"app.title":          "連招導航",
		"overlay.step":       "步驟",
		"overlay.hold":       "長按",
		"overlay.memo":       "備註",
		"game.running":       "遊戲執行中",
		"game.not_running":   "遊戲未執行",
		"combo.none":         "未載入連招",
		"settings.title":     "設定",
		"settings.language":  "語言",
		"settings.opacity":   "不透明度",
		"settings.combofile": "連招檔案",
	},
}
