package display

import "github.com/jedib0t/go-pretty/v6/text"

var (
	headerStyle = text.Colors{text.Bold, text.Underline}
	nameStyle   = text.Colors{text.Bold}
)

// header styles a section title such as "Usage:" or "Options:".
func header(s string) string { return headerStyle.Sprint(s) }

func commandName(s string) string { return nameStyle.Sprint(s) }
