package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"occ/internal/ast"
)

type treeBlock struct {
	lines []string
	width int
	root  int // колонка, над которой стоит корень блока
}

const treeSpacing = 2

// FormatASTTree draws each statement top-down, parents centred over their
// children and joined to them with '/', '|' and '\' connectors.
func FormatASTTree(w io.Writer, prog *ast.Program, ctx ASTContext) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	root := ctx.build("", prog)
	for _, stmt := range root.children {
		compactLabels(stmt)
		block := renderTree(stmt)
		for _, line := range block.lines {
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// compactLabels shortens labels to what fits a drawn tree.
func compactLabels(t *treeNode) {
	switch {
	case strings.HasPrefix(t.label, "Binary "):
		t.label = strings.TrimPrefix(t.label, "Binary ")
	case strings.HasPrefix(t.label, "IntLit "):
		t.label = strings.TrimPrefix(t.label, "IntLit ")
	case strings.HasPrefix(t.label, "VarRef "):
		t.label = strings.TrimPrefix(t.label, "VarRef ")
	case t.label == "Assign":
		t.label = "="
	case t.label == "ExprStmt":
		t.label = "expr"
	default:
		t.label = strings.ToLower(t.label)
	}
	for _, c := range t.children {
		compactLabels(c)
	}
}

func renderTree(t *treeNode) treeBlock {
	labelWidth := runewidth.StringWidth(t.label)
	if len(t.children) == 0 {
		return treeBlock{lines: []string{t.label}, width: labelWidth, root: labelWidth / 2}
	}

	blocks := make([]treeBlock, len(t.children))
	roots := make([]int, len(t.children))
	height, offset := 0, 0
	for i, c := range t.children {
		blocks[i] = renderTree(c)
		roots[i] = offset + blocks[i].root
		offset += blocks[i].width + treeSpacing
		height = max(height, len(blocks[i].lines))
	}
	childrenWidth := offset - treeSpacing

	rootCol := (roots[0] + roots[len(roots)-1]) / 2
	labelStart := rootCol - labelWidth/2
	shift := 0
	if labelStart < 0 {
		shift = -labelStart
		labelStart = 0
		rootCol += shift
	}
	width := max(childrenWidth+shift, labelStart+labelWidth)

	lines := make([]string, 0, height+2)
	lines = append(lines, padTo(strings.Repeat(" ", labelStart)+t.label, width))

	connector := []byte(strings.Repeat(" ", width))
	for _, r := range roots {
		col := r + shift
		switch {
		case col < rootCol:
			connector[col] = '/'
		case col > rootCol:
			connector[col] = '\\'
		default:
			connector[col] = '|'
		}
	}
	lines = append(lines, string(connector))

	for row := 0; row < height; row++ {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", shift))
		for i, b := range blocks {
			cell := ""
			if row < len(b.lines) {
				cell = b.lines[row]
			}
			sb.WriteString(padTo(cell, b.width))
			if i != len(blocks)-1 {
				sb.WriteString(strings.Repeat(" ", treeSpacing))
			}
		}
		lines = append(lines, padTo(sb.String(), width))
	}
	return treeBlock{lines: lines, width: width, root: rootCol}
}

func padTo(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
