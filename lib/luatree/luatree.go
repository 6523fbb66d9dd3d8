// Package luatree exposes parse trees to Lua scripts.
//
// Leaves become {kind=<name>, value=<text>} tables and interior nodes
// become {kind=<name>, children={...}} with children in source order.
package luatree

import (
	"fmt"
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/kris-lovins/Scheme-Tokenizer-Parser/lib/ast"
)

// ToLua converts n into a Lua value owned by L.
func ToLua(L *lua.LState, n *ast.Node) lua.LValue {
	if n == nil {
		return lua.LNil
	}

	t := L.NewTable()
	t.RawSetString("kind", lua.LString(n.Kind.String()))
	if n.IsLeaf() {
		t.RawSetString("value", lua.LString(n.Value))
		return t
	}

	children := L.NewTable()
	for _, c := range n.Children {
		children.Append(ToLua(L, c))
	}
	t.RawSetString("children", children)
	return t
}

// Run executes script with the tree bound to the global "tree". Output of
// the Lua print function goes to out.
func Run(tree *ast.Node, name, script string, out io.Writer) error {
	L := lua.NewState()
	defer L.Close()

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		args := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			args = append(args, L.Get(i).String())
		}
		fmt.Fprintln(out, strings.Join(args, "\t"))
		return 0
	}))
	L.SetGlobal("tree", ToLua(L, tree))

	fn, err := L.LoadString(script)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
