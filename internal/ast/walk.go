package ast

// Visitor's Visit is called for each node met by Walk. If the returned
// visitor w is not nil, Walk visits each child of node with w, followed
// by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses the tree in depth-first source order.
func Walk(v Visitor, node Node) {
	if node == nil || isNilNode(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(v, s)
		}
	case *ReturnStmt:
		walkExpr(v, n.Result)
	case *IfStmt:
		walkExpr(v, n.Cond)
		walkStmt(v, n.Then)
		walkStmt(v, n.Else)
	case *ForStmt:
		walkExpr(v, n.Init)
		walkExpr(v, n.Cond)
		walkExpr(v, n.Post)
		walkStmt(v, n.Body)
	case *WhileStmt:
		walkExpr(v, n.Cond)
		walkStmt(v, n.Body)
	case *ExprStmt:
		walkExpr(v, n.X)
	case *BinaryExpr:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *AssignExpr:
		walkExpr(v, n.Target)
		walkExpr(v, n.Value)
	case *IntLit, *VarRef:
		// листья
	}

	v.Visit(nil)
}

func walkExpr(v Visitor, e Expr) {
	if e != nil {
		Walk(v, e)
	}
}

func walkStmt(v Visitor, s Stmt) {
	if s != nil {
		Walk(v, s)
	}
}

// isNilNode catches typed nil pointers stored in an interface.
func isNilNode(node Node) bool {
	switch n := node.(type) {
	case *Program:
		return n == nil
	case *ReturnStmt:
		return n == nil
	case *IfStmt:
		return n == nil
	case *ForStmt:
		return n == nil
	case *WhileStmt:
		return n == nil
	case *ExprStmt:
		return n == nil
	case *BinaryExpr:
		return n == nil
	case *AssignExpr:
		return n == nil
	case *IntLit:
		return n == nil
	case *VarRef:
		return n == nil
	}
	return false
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if node != nil && f(node) {
		return f
	}
	return nil
}

// Inspect calls f for each node in depth-first source order.
// Children are skipped when f returns false.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
