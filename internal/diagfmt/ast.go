package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"occ/internal/ast"
	"occ/internal/source"
	"occ/internal/symbols"
)

// ASTContext carries what the AST printers need to turn IDs into names.
type ASTContext struct {
	FileSet *source.FileSet // nil: спаны печатаются в байтах
	Strings *source.Interner
	Symbols *symbols.Table // nil: слоты не печатаются
}

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Role     string          `json:"role,omitempty"`
	Span     source.Span     `json:"span"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// treeNode is the printer-neutral shape shared by the pretty and tree layouts.
type treeNode struct {
	role     string // роль у родителя: "Cond", "Body", ...
	label    string
	span     source.Span
	hasSpan  bool
	children []*treeNode
}

func (c ASTContext) name(id source.StringID) string {
	if c.Strings != nil {
		if s, ok := c.Strings.Lookup(id); ok {
			return s
		}
	}
	return "$" + strconv.FormatUint(uint64(id), 10)
}

func (c ASTContext) varLabel(ref *ast.VarRef) string {
	label := c.name(ref.Name)
	if c.Symbols != nil {
		if sym := c.Symbols.Get(ref.Symbol); sym != nil {
			label += fmt.Sprintf(" #%d", sym.Slot)
		}
	}
	return label
}

func (c ASTContext) build(role string, n ast.Node) *treeNode {
	if n == nil {
		return &treeNode{role: role, label: "_"}
	}
	t := &treeNode{role: role, span: n.NodeSpan(), hasSpan: true}
	add := func(role string, child ast.Node) {
		t.children = append(t.children, c.build(role, child))
	}
	switch n := n.(type) {
	case *ast.Program:
		t.label = "Program"
		for i, s := range n.Stmts {
			add(fmt.Sprintf("Stmt[%d]", i), s)
		}
	case *ast.ReturnStmt:
		t.label = "Return"
		add("Result", n.Result)
	case *ast.IfStmt:
		t.label = "If"
		add("Cond", n.Cond)
		add("Then", n.Then)
		if n.Else != nil {
			add("Else", n.Else)
		}
	case *ast.ForStmt:
		t.label = "For"
		add("Init", nodeOrNil(n.Init))
		add("Cond", nodeOrNil(n.Cond))
		add("Post", nodeOrNil(n.Post))
		add("Body", n.Body)
	case *ast.WhileStmt:
		t.label = "While"
		add("Cond", n.Cond)
		add("Body", n.Body)
	case *ast.ExprStmt:
		t.label = "ExprStmt"
		add("X", n.X)
	case *ast.BinaryExpr:
		t.label = "Binary " + n.Op.String()
		add("Left", n.Left)
		add("Right", n.Right)
	case *ast.AssignExpr:
		t.label = "Assign"
		add("Target", n.Target)
		add("Value", n.Value)
	case *ast.IntLit:
		t.label = "IntLit " + strconv.FormatUint(n.Value, 10)
	case *ast.VarRef:
		t.label = "VarRef " + c.varLabel(n)
	default:
		t.label = fmt.Sprintf("%T", n)
	}
	return t
}

func nodeOrNil(e ast.Expr) ast.Node {
	if e == nil {
		return nil
	}
	return e
}

// FormatASTPretty prints the program as an indented box-drawing tree.
func FormatASTPretty(w io.Writer, prog *ast.Program, ctx ASTContext) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	root := ctx.build("", prog)
	if _, err := fmt.Fprintf(w, "%s (span: %s)\n", root.label, formatSpan(root.span, ctx.FileSet)); err != nil {
		return err
	}
	return writePrettyChildren(w, root, "", ctx.FileSet)
}

func writePrettyChildren(w io.Writer, t *treeNode, prefix string, fs *source.FileSet) error {
	for i, child := range t.children {
		branch, next := "├─ ", "│  "
		if i == len(t.children)-1 {
			branch, next = "└─ ", "   "
		}
		line := prefix + branch + child.role + ": " + child.label
		if child.hasSpan {
			line += " (span: " + formatSpan(child.span, fs) + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		if err := writePrettyChildren(w, child, prefix+next, fs); err != nil {
			return err
		}
	}
	return nil
}

// FormatASTJSON writes the program as a JSON node tree.
func FormatASTJSON(w io.Writer, prog *ast.Program, ctx ASTContext) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ctx.jsonNode("", prog))
}

// BuildASTOutput returns the JSON shape of prog, or nil for a failed parse.
func BuildASTOutput(prog *ast.Program, ctx ASTContext) *ASTNodeOutput {
	if prog == nil {
		return nil
	}
	out := ctx.jsonNode("", prog)
	return &out
}

func (c ASTContext) jsonNode(role string, n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Role: role, Span: n.NodeSpan()}
	add := func(role string, child ast.Node) {
		if child != nil {
			out.Children = append(out.Children, c.jsonNode(role, child))
		}
	}
	switch n := n.(type) {
	case *ast.Program:
		out.Type = "Program"
		for _, s := range n.Stmts {
			add("stmt", s)
		}
	case *ast.ReturnStmt:
		out.Type = "Return"
		add("result", n.Result)
	case *ast.IfStmt:
		out.Type = "If"
		add("cond", n.Cond)
		add("then", n.Then)
		if n.Else != nil {
			add("else", n.Else)
		}
	case *ast.ForStmt:
		out.Type = "For"
		add("init", nodeOrNil(n.Init))
		add("cond", nodeOrNil(n.Cond))
		add("post", nodeOrNil(n.Post))
		add("body", n.Body)
	case *ast.WhileStmt:
		out.Type = "While"
		add("cond", n.Cond)
		add("body", n.Body)
	case *ast.ExprStmt:
		out.Type = "ExprStmt"
		add("x", n.X)
	case *ast.BinaryExpr:
		out.Type = "Binary"
		out.Fields = map[string]any{"op": n.Op.Name()}
		add("left", n.Left)
		add("right", n.Right)
	case *ast.AssignExpr:
		out.Type = "Assign"
		add("target", n.Target)
		add("value", n.Value)
	case *ast.IntLit:
		out.Type = "IntLit"
		out.Fields = map[string]any{"value": n.Value}
	case *ast.VarRef:
		out.Type = "VarRef"
		out.Fields = map[string]any{"name": c.name(n.Name)}
		if c.Symbols != nil {
			if sym := c.Symbols.Get(n.Symbol); sym != nil {
				out.Fields["slot"] = sym.Slot
			}
		}
	}
	return out
}

// FormatASTSexpr writes the canonical s-expression dump followed by a newline.
func FormatASTSexpr(w io.Writer, prog *ast.Program, ctx ASTContext) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	_, err := fmt.Fprintln(w, ast.Sexpr(prog, ctx.Strings))
	return err
}
