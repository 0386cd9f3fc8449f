package gen

import (
	"fmt"
	"strconv"
	"strings"

	"rowmap-generator/internal/plan"
)

// GenerateStruct renders the Go definition of s: doc comment, type
// parameters, and every field with its doc and tag.
func (g *Generator) GenerateStruct(s plan.RawStruct) string {
	var sb strings.Builder

	sb.WriteString(commentLines(s.Doc, ""))

	params := ""
	if len(s.TypeParams) > 0 {
		parts := make([]string, len(s.TypeParams))
		for i, tp := range s.TypeParams {
			parts[i] = tp.Name + " " + tp.Constraint
		}

		params = "[" + strings.Join(parts, ", ") + "]"
	}

	sb.WriteString(fmt.Sprintf("type %s%s struct {\n", s.Name, params))

	for _, f := range s.Fields {
		sb.WriteString(commentLines(f.Doc, "\t"))
		sb.WriteString(fmt.Sprintf("\t%s %s", f.Name, f.Type))

		if f.Tag != "" {
			sb.WriteString(" " + quoteTag(f.Tag))
		}

		sb.WriteString("\n")
	}

	sb.WriteString("}\n")

	return sb.String()
}

func quoteTag(tag string) string {
	if strings.Contains(tag, "`") {
		return strconv.Quote(tag)
	}

	return "`" + tag + "`"
}
