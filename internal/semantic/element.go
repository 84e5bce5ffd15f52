// Package semantic is the boundary to the filing parser: it turns raw SEC
// EDGAR HTML into an ordered sequence of semantic elements and assembles
// those elements into a tree. Consumers treat elements and trees as
// immutable, already-built inputs.
package semantic

import "strings"

// Kind classifies a semantic element.
type Kind int

const (
	KindUndetermined Kind = iota
	KindText
	KindTitle
	KindRootSection
	KindRootSectionSeparator
	KindTable
	KindImage
	KindBulletpoint
	KindFootnote
	KindSupplementary
	KindIrrelevant
	KindEmpty
)

var kindNames = map[Kind]string{
	KindUndetermined:         "Undetermined",
	KindText:                 "Text",
	KindTitle:                "Title",
	KindRootSection:          "RootSection",
	KindRootSectionSeparator: "RootSectionSeparator",
	KindTable:                "Table",
	KindImage:                "Image",
	KindBulletpoint:          "Bulletpoint",
	KindFootnote:             "Footnote",
	KindSupplementary:        "Supplementary",
	KindIrrelevant:           "Irrelevant",
	KindEmpty:                "Empty",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "Undetermined"
}

// DisplayName returns the kind name with spaces between camel-case words,
// e.g. "RootSectionSeparator" -> "Root Section Separator".
func (k Kind) DisplayName() string {
	name := k.String()
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Irrelevant reports whether elements of this kind carry no content worth
// showing by default. The viewer pre-selects every other kind.
func (k Kind) Irrelevant() bool {
	return k == KindIrrelevant || k == KindEmpty
}

// Icon returns the bootstrap-icon name used for this kind in the tree browser.
func (k Kind) Icon() string {
	switch k {
	case KindText:
		return "text-paragraph"
	case KindTitle:
		return "bookmark"
	case KindRootSection:
		return "journal-bookmark"
	case KindTable:
		return "table"
	case KindImage:
		return "card-image"
	case KindUndetermined:
		return "question-square"
	case KindIrrelevant, KindEmpty:
		return "trash"
	case KindRootSectionSeparator:
		return "pause"
	case KindBulletpoint:
		return "blockquote-left"
	case KindFootnote:
		return "braces-asterisk"
	case KindSupplementary:
		return "text-wrap"
	}
	return "box"
}

// ParseKind maps a kind name back to its Kind. Unknown names map to
// KindUndetermined with ok=false.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUndetermined, false
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindUndetermined,
		KindText,
		KindTitle,
		KindRootSection,
		KindRootSectionSeparator,
		KindTable,
		KindImage,
		KindBulletpoint,
		KindFootnote,
		KindSupplementary,
		KindIrrelevant,
		KindEmpty,
	}
}

// Element is one unit of meaning extracted from a filing. Level is only
// meaningful for titles and sections (lower nests higher). HTML holds the
// original markup fragment; Text is its flattened text content.
type Element struct {
	Kind  Kind
	Level int
	HTML  string
	Text  string
}

// TextLen returns the length of the element's visible text.
func (e *Element) TextLen() int {
	return len(e.Text)
}
