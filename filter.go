package triage

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"unicode/utf8"
)

// AllApplications is the dropdown value meaning "no application filter".
const AllApplications = "__all__"

// BlockView annotates a block with filter visibility and a highlighted
// rendering of its HTML.
type BlockView struct {
	Block
	Visible bool
	HTML    template.HTML // block HTML with search matches wrapped in <mark>
}

// SectionView annotates a section with filter visibility.
type SectionView struct {
	Section
	Visible bool
	Blocks  []BlockView
}

// Suggestion is one entry in the live search suggestion list.
type Suggestion struct {
	App     string `json:"app"`
	Slug    string `json:"slug"`
	Summary string `json:"summary"`
	Snippet string `json:"snippet"`
	Errors  int    `json:"errors"`
	Matched bool   `json:"matched"`
}

// Apply computes the visibility and highlight annotations for the given
// application selection and search term. It is a pure function over the
// parsed sections: the browser-side filtering implements the same
// algorithm against the delivered DOM.
//
// A section is visible if the selection is AllApplications (or empty, or
// its name) and the term is empty or matches the section name or at least
// one block. Under a non-empty term, only matching blocks within a
// visible section remain visible, unless the section name itself matched,
// in which case the whole section stays. Matching is case-insensitive.
//
// The selection is a section name, not a slug: names need not be unique,
// and selecting a repeated name shows every section carrying it.
func Apply(sections []Section, selection, term string) []SectionView {
	term = strings.TrimSpace(term)
	lower := strings.ToLower(term)

	views := make([]SectionView, 0, len(sections))
	for _, s := range sections {
		v := SectionView{Section: s, Blocks: make([]BlockView, 0, len(s.Blocks))}

		selected := selection == "" || selection == AllApplications || selection == s.Name
		nameMatch := lower != "" && strings.Contains(strings.ToLower(s.Name), lower)

		anyBlock := false
		for _, b := range s.Blocks {
			blockMatch := lower == "" || strings.Contains(strings.ToLower(b.Text), lower)
			anyBlock = anyBlock || blockMatch
			v.Blocks = append(v.Blocks, BlockView{
				Block:   b,
				Visible: blockMatch || nameMatch,
				HTML:    Highlight(b.HTML, term),
			})
		}

		v.Visible = selected && (lower == "" || nameMatch || anyBlock)
		views = append(views, v)
	}
	return views
}

// Suggest builds the live suggestion list for an in-progress search term:
// one entry per section matching the term, with a short summary and the
// first matching block as a highlighted snippet. An empty term matches
// every section.
func Suggest(sections []Section, term string) []Suggestion {
	term = strings.TrimSpace(term)
	lower := strings.ToLower(term)

	var out []Suggestion
	for _, s := range sections {
		nameMatch := lower != "" && strings.Contains(strings.ToLower(s.Name), lower)

		snippet := ""
		for _, b := range s.Blocks {
			if lower != "" && strings.Contains(strings.ToLower(b.Text), lower) {
				snippet = string(Highlight(b.HTML, term))
				break
			}
		}

		if lower != "" && !nameMatch && snippet == "" {
			continue
		}

		out = append(out, Suggestion{
			App:     s.Name,
			Slug:    s.Slug,
			Summary: summarize(s),
			Snippet: snippet,
			Errors:  s.ErrorCount,
			Matched: lower != "",
		})
	}
	return out
}

const summaryLimit = 100

// summarize joins the first few non-heading blocks into a short preview.
func summarize(s Section) string {
	var parts []string
	for _, b := range s.Blocks {
		if b.Kind == BlockHeading {
			continue
		}
		parts = append(parts, b.Text)
		if len(parts) == 3 {
			break
		}
	}
	summary := strings.Join(parts, " ")
	if len(summary) > summaryLimit {
		// Back up to a rune boundary so the cut never emits invalid UTF-8.
		cut := summaryLimit
		for cut > 0 && !utf8.RuneStart(summary[cut]) {
			cut--
		}
		summary = summary[:cut]
	}
	return summary
}

// Highlight wraps case-insensitive occurrences of term in <mark> tags,
// touching only text outside existing tags so markup like <strong> is
// never corrupted. A term spanning a tag boundary ("check service"
// against "<strong>check</strong> service") still makes the block visible
// through its plain Text but receives no mark.
func Highlight(src template.HTML, term string) template.HTML {
	term = strings.TrimSpace(term)
	if term == "" {
		return src
	}
	// The source is escaped HTML, so the needle must be escaped too for
	// terms containing &, < or >.
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(html.EscapeString(term)))

	var b strings.Builder
	s := string(src)
	for {
		lt := strings.IndexByte(s, '<')
		if lt == -1 {
			b.WriteString(mark(re, s))
			break
		}
		b.WriteString(mark(re, s[:lt]))
		gt := strings.IndexByte(s[lt:], '>')
		if gt == -1 {
			b.WriteString(s[lt:])
			break
		}
		b.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return template.HTML(b.String())
}

func mark(re *regexp.Regexp, segment string) string {
	return re.ReplaceAllStringFunc(segment, func(m string) string {
		return "<mark>" + m + "</mark>"
	})
}
