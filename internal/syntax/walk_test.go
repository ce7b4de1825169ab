package syntax

import (
	"testing"

	"sensei/internal/source"
)

// buildTree assembles a tiny class by hand: one method containing an if
// statement with a return.
func buildTree() (*Class, *Method, *Return) {
	ret := &Return{}
	ret.SetSpan(source.FromBounds(40, 47))

	then := &Block{Stmts: []Stmt{ret}}
	then.SetSpan(source.FromBounds(38, 50))

	iff := &If{Then: then}
	iff.SetSpan(source.FromBounds(30, 52))

	body := &Block{Stmts: []Stmt{iff}}
	body.SetSpan(source.FromBounds(28, 54))

	m := &Method{Name: Token{Text: "M"}, Body: body}
	m.SetSpan(source.FromBounds(20, 55))

	c := &Class{Name: Token{Text: "C"}, Members: []Member{m}}
	c.SetSpan(source.FromBounds(0, 60))

	SetParents(c)
	return c, m, ret
}

func TestWalkVisitsInOrder(t *testing.T) {
	c, _, _ := buildTree()

	var kinds []Kind
	Walk(c, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})

	want := []Kind{KindClass, KindMethod, KindBlock, KindIf, KindBlock, KindReturn}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("visited %v, want %v", kinds, want)
		}
	}
}

func TestWalkPrunes(t *testing.T) {
	c, _, _ := buildTree()

	var visited int
	Walk(c, func(n Node) bool {
		visited++
		_, isBlock := n.(*Block)
		return !isBlock
	})
	// Class, method, outer block; nothing below the pruned block.
	if visited != 3 {
		t.Errorf("visited %d nodes, want 3", visited)
	}
}

func TestEnclosingLookups(t *testing.T) {
	c, m, ret := buildTree()

	if got, ok := EnclosingMethod(ret); !ok || got != m {
		t.Errorf("EnclosingMethod: %v %v", got, ok)
	}
	if got, ok := EnclosingClass(ret); !ok || got != c {
		t.Errorf("EnclosingClass: %v %v", got, ok)
	}
	if got, ok := EnclosingClass(c); !ok || got != c {
		t.Errorf("EnclosingClass on self: %v %v", got, ok)
	}
	if _, ok := EnclosingMethod(c); ok {
		t.Error("class should have no enclosing method")
	}
}
