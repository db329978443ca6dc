package generator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/brewgen/internal/render"
)

// UnresolvedTokenError reports a $TOKEN in a template that has no entry in
// the replacement mapping. It renders with the surrounding template lines so
// the token can be located without opening the file.
type UnresolvedTokenError struct {
	File    string
	Token   string
	Line    int
	Column  int
	Context []string
}

// NewUnresolvedTokenError builds the error from the template text and the
// unresolved token's byte offset.
func NewUnresolvedTokenError(file, text string, u *render.Unresolved) *UnresolvedTokenError {
	te := &UnresolvedTokenError{
		File:  file,
		Token: u.Name,
	}

	te.locate(text, u.Offset)
	te.loadContext(text)

	return te
}

// locate converts a byte offset into a 1-based line and column.
func (te *UnresolvedTokenError) locate(text string, offset int) {
	if offset > len(text) {
		offset = len(text)
	}

	before := text[:offset]
	te.Line = strings.Count(before, "\n") + 1

	lastNewline := strings.LastIndexByte(before, '\n')
	te.Column = offset - lastNewline // lastNewline is -1 on the first line
}

func (te *UnresolvedTokenError) loadContext(text string) {
	lines := strings.Split(text, "\n")

	start := max(te.Line-2, 1)
	end := min(te.Line+2, len(lines))

	te.Context = lines[start-1 : end]
}

func (te *UnresolvedTokenError) Error() string {
	return te.format()
}

func (te *UnresolvedTokenError) format() string {
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true)
	lineNumStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorLineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	contextStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	pointerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)

	var sb strings.Builder

	sb.WriteString(errorStyle.Render("Unresolved Token") + "\n\n")
	sb.WriteString(fileStyle.Render(fmt.Sprintf("%s:%d:%d", te.File, te.Line, te.Column)) + "\n\n")

	startLine := max(te.Line-2, 1)

	for i, line := range te.Context {
		currentLine := startLine + i
		lineNumStr := fmt.Sprintf("%4d │ ", currentLine)

		if currentLine == te.Line {
			sb.WriteString(errorLineStyle.Render(lineNumStr))
			sb.WriteString(errorLineStyle.Render(line) + "\n")

			if te.Column > 0 && te.Column <= len(line) {
				spaces := strings.Repeat(" ", 7+te.Column-1)
				sb.WriteString(spaces + pointerStyle.Render("^") + "\n")
			}
		} else {
			sb.WriteString(lineNumStyle.Render(lineNumStr))
			sb.WriteString(contextStyle.Render(line) + "\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(errorStyle.Render("Error: ") + fmt.Sprintf("no replacement for token $%s", te.Token) + "\n")

	return sb.String()
}
