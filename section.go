package triage

import (
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// BlockKind classifies a single content unit within a section.
type BlockKind int

// Block kinds, in order of classifier priority.
const (
	BlockHeading BlockKind = iota
	BlockBullet
	BlockParagraph
)

// Block is one classified unit of guide content: a sub-heading, a single
// bullet item, or a paragraph. Text holds the plain content with inline
// markup stripped (used for search matching); HTML holds the escaped
// content with **bold** spans resolved to <strong>.
type Block struct {
	Kind  BlockKind
	Level int // heading level for BlockHeading (3 or 4), 0 otherwise
	Text  string
	HTML  template.HTML
}

// Section is the content grouped under one #-level application heading.
type Section struct {
	Name   string
	Slug   string
	Blocks []Block

	// ErrorCount is the number of bullets that document an error
	// (bullets whose content starts with a bold span).
	ErrorCount int
}

// GeneralSection is the name given to the implicit section holding any
// content that appears before the first # heading.
const GeneralSection = "General"

var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// renderInline escapes a line of guide text and resolves **bold** spans.
func renderInline(s string) template.HTML {
	escaped := html.EscapeString(s)
	return template.HTML(boldRe.ReplaceAllString(escaped, "<strong>$1</strong>"))
}

// stripInline removes inline markup, leaving the plain search text.
func stripInline(s string) string {
	return boldRe.ReplaceAllString(s, "$1")
}

// ParseGuide parses raw guide text into an ordered sequence of sections.
//
// The markup is line-oriented and forgiving: "# Name" starts a section,
// "## " and "### " are sub-headings within the current section, "- " is a
// bullet item, and blank lines close the current paragraph. Any other
// non-blank line accumulates into a paragraph, so malformed input never
// fails. Content before the first heading lands in an implicit "General"
// section.
func ParseGuide(text string) []Section {
	var sections []Section

	cur := -1 // index into sections; -1 until the first block or heading
	var para []string

	section := func() *Section {
		if cur == -1 {
			sections = append(sections, Section{Name: GeneralSection})
			cur = len(sections) - 1
		}
		return &sections[cur]
	}

	closeParagraph := func() {
		if len(para) == 0 {
			return
		}
		joined := strings.Join(para, " ")
		s := section()
		s.Blocks = append(s.Blocks, Block{
			Kind: BlockParagraph,
			Text: stripInline(joined),
			HTML: renderInline(joined),
		})
		para = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "# ") && strings.TrimSpace(line[2:]) != "":
			closeParagraph()
			sections = append(sections, Section{Name: strings.TrimSpace(line[2:])})
			cur = len(sections) - 1

		case strings.HasPrefix(line, "### "):
			closeParagraph()
			appendHeading(section(), 4, line[4:])

		case strings.HasPrefix(line, "## "):
			closeParagraph()
			appendHeading(section(), 3, line[3:])

		case strings.HasPrefix(line, "- "):
			closeParagraph()
			item := line[2:]
			s := section()
			s.Blocks = append(s.Blocks, Block{
				Kind: BlockBullet,
				Text: stripInline(item),
				HTML: renderInline(item),
			})
			if strings.HasPrefix(item, "**") {
				s.ErrorCount++
			}

		case line == "":
			closeParagraph()

		default:
			para = append(para, line)
		}
	}
	closeParagraph()

	for i := range sections {
		sections[i].Slug = fmt.Sprintf("app%d", i)
	}

	return sections
}

func appendHeading(s *Section, level int, text string) {
	s.Blocks = append(s.Blocks, Block{
		Kind:  BlockHeading,
		Level: level,
		Text:  stripInline(text),
		HTML:  renderInline(text),
	})
}
