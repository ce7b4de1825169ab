package syntax

// Children returns a node's direct children in source order. Nil children are
// omitted. The engine mostly navigates structurally, but parent wiring and the
// tutor's per-kind dispatch both want a uniform traversal.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *Class:
		for _, m := range n.Members {
			add(m)
		}
	case *Field:
		add(n.Init)
	case *Property:
		for _, a := range n.Accessors {
			add(a)
		}
	case *Accessor:
		if n.Body != nil {
			add(n.Body)
		}
	case *Method:
		for _, p := range n.Params {
			add(p)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *Block:
		for _, s := range n.Stmts {
			add(s)
		}
	case *LocalDecl:
		add(n.Init)
	case *ExprStmt:
		add(n.X)
	case *If:
		add(n.Cond)
		if n.Then != nil {
			add(n.Then)
		}
		add(n.Else)
	case *Return:
		add(n.Result)
	case *MemberAccess:
		add(n.X)
	case *Invocation:
		add(n.Fun)
		if n.Args != nil {
			add(n.Args)
		}
	case *ArgList:
		for _, a := range n.Args {
			add(a)
		}
	case *Arg:
		add(n.Value)
	case *ObjectCreation:
		if n.Args != nil {
			add(n.Args)
		}
	case *Cast:
		add(n.Value)
	case *AsExpr:
		add(n.Value)
	case *Binary:
		add(n.X)
		add(n.Y)
	}
	return out
}

// Walk visits n and its descendants in source order. The visitor returns
// false to prune a subtree.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, visit)
	}
}

// SetParents wires parent links for n's whole subtree. The front end calls it
// once per parse; nothing mutates the tree afterwards.
func SetParents(n Node) {
	for _, c := range Children(n) {
		c.setParent(n)
		SetParents(c)
	}
}

// EnclosingClass walks ancestors-and-self to the nearest class declaration.
func EnclosingClass(n Node) (*Class, bool) {
	for cur := n; cur != nil; cur = cur.Parent() {
		if c, ok := cur.(*Class); ok {
			return c, true
		}
	}
	return nil, false
}

// EnclosingMethod walks ancestors-and-self to the nearest method declaration.
func EnclosingMethod(n Node) (*Method, bool) {
	for cur := n; cur != nil; cur = cur.Parent() {
		if m, ok := cur.(*Method); ok {
			return m, true
		}
	}
	return nil, false
}
