package valueobjects

import "strings"

type Style string

const (
	StyleDefault   Style = "default"
	StyleStudio    Style = "studio"
	StyleOutdoor   Style = "outdoor"
	StyleLifestyle Style = "lifestyle"
	StyleEditorial Style = "editorial"
)

// DefaultCategory is applied when a request names no garment category.
const DefaultCategory = "upper_body"

// 撮影スタイルごとの説明文（起動時に固定）
var styleDescriptions = map[Style]string{
	StyleStudio:    "professional studio lighting, clean white or neutral background, high-end fashion photography",
	StyleOutdoor:   "natural daylight, outdoor urban or nature setting, lifestyle photography",
	StyleLifestyle: "casual everyday setting, warm natural lighting, candid lifestyle photography",
	StyleEditorial: "high fashion editorial style, dramatic lighting, magazine-quality photography",
}

// Description returns the photographic description for s. Unknown styles,
// including StyleDefault, use the studio look.
func (s Style) Description() string {
	if desc, ok := styleDescriptions[Style(strings.ToLower(string(s)))]; ok {
		return desc
	}
	return styleDescriptions[StyleStudio]
}

func (s Style) IsKnown() bool {
	_, ok := styleDescriptions[Style(strings.ToLower(string(s)))]
	return ok
}

// HumanizeCategory turns "upper_body" into "upper body".
func HumanizeCategory(category string) string {
	if category == "" {
		category = DefaultCategory
	}
	return strings.ReplaceAll(category, "_", " ")
}
