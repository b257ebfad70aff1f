package http

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pwielgus/triage"
)

// renderBlocks renders the visible blocks of a section to HTML, grouping
// runs of consecutive bullets into a single list.
func renderBlocks(blocks []triage.BlockView) template.HTML {
	var b strings.Builder
	listOpen := false

	closeList := func() {
		if listOpen {
			b.WriteString("</ul>\n")
			listOpen = false
		}
	}

	for _, blk := range blocks {
		if !blk.Visible {
			continue
		}
		switch blk.Kind {
		case triage.BlockHeading:
			closeList()
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", blk.Level, blk.HTML, blk.Level)
		case triage.BlockBullet:
			if !listOpen {
				b.WriteString("<ul>\n")
				listOpen = true
			}
			fmt.Fprintf(&b, "<li>%s</li>\n", blk.HTML)
		case triage.BlockParagraph:
			closeList()
			fmt.Fprintf(&b, "<p>%s</p>\n", blk.HTML)
		}
	}
	closeList()

	return template.HTML(b.String())
}
