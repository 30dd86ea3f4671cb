package ast

// Visitor is called once per node in a Walk, in pre-order. Returning false
// skips the node's children.
type Visitor func(Node) bool

// Walk traverses n and its descendants in pre-order, calling v for each.
// It calls v for the Program, statements, expressions and class members
// only. Tokens, separators, trivia and types are not visited, and neither
// are the small helper nodes used inside lists (parameters, table fields,
// declarators, enum members, struct fields, switch cases): Walk descends
// into the expressions and statements they hold without calling v on the
// helper itself.
func Walk(n Node, v Visitor) {
	if n == nil || !v(n) {
		return
	}
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *BlockStmt:
		for _, s := range n.Stmts {
			Walk(s, v)
		}
	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		if n.Else != nil {
			Walk(n.Else, v)
		}
	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *DoWhileStmt:
		Walk(n.Body, v)
		Walk(n.Cond, v)
	case *SwitchStmt:
		Walk(n.Cond, v)
		for _, c := range n.Cases {
			if c.Value != nil {
				Walk(c.Value, v)
			}
			for _, s := range c.Stmts {
				Walk(s, v)
			}
		}
	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, v)
		}
		if n.Cond != nil {
			Walk(n.Cond, v)
		}
		if n.Post != nil {
			Walk(n.Post, v)
		}
		Walk(n.Body, v)
	case *ForeachStmt:
		Walk(n.Iter, v)
		Walk(n.Body, v)
	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *YieldStmt:
		if n.Value != nil {
			Walk(n.Value, v)
		}
	case *ThrowStmt:
		Walk(n.Value, v)
	case *VarDefinition:
		for _, d := range n.Declarators.Items {
			if d.Value != nil {
				Walk(d.Value, v)
			}
		}
	case *ConstDefinition:
		Walk(n.Value, v)
	case *EnumDefinition:
		for _, m := range n.Members.Items {
			if m.Value != nil {
				Walk(m.Value, v)
			}
		}
	case *FunctionDefinition:
		for _, p := range n.Params.Items {
			if p.Default != nil {
				Walk(p.Default, v)
			}
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}
	case *ConstructorDefinition:
		for _, p := range n.Params.Items {
			if p.Default != nil {
				Walk(p.Default, v)
			}
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}
	case *StructDeclaration:
		for _, f := range n.Fields.Items {
			if f.Default != nil {
				Walk(f.Default, v)
			}
		}
	case *ClassDefinition:
		if n.Base != nil {
			Walk(n.Base, v)
		}
		for _, m := range n.Members {
			Walk(m, v)
		}
	case *TryCatchStmt:
		Walk(n.TryBody, v)
		Walk(n.CatchBody, v)
	case *ThreadStmt:
		Walk(n.Call, v)
	case *DelaythreadStmt:
		Walk(n.Delay, v)
		Walk(n.Call, v)
	case *WaitthreadStmt:
		Walk(n.Call, v)
	case *WaitthreadsoloStmt:
		Walk(n.Call, v)
	case *WaitStmt:
		Walk(n.Value, v)
	case *GlobalStmt:
		Walk(n.Def, v)
	case *UntypedStmt:
		Walk(n.Inner, v)
	case *ExpressionStmt:
		Walk(n.Expr, v)

	case *ParenExpr:
		Walk(n.Inner, v)
	case *IndexExpr:
		Walk(n.Base, v)
		Walk(n.Index, v)
	case *PropertyExpr:
		Walk(n.Base, v)
	case *TernaryExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)
	case *BinaryExpr:
		Walk(n.Left, v)
		Walk(n.Right, v)
	case *PrefixExpr:
		Walk(n.Operand, v)
	case *PostfixExpr:
		Walk(n.Operand, v)
	case *CommaExpr:
		for _, e := range n.Exprs.Items {
			Walk(e.Expr, v)
		}
	case *TableLiteral:
		for _, f := range n.Fields.Items {
			Walk(f.Key, v)
			Walk(f.Value, v)
		}
	case *ArrayLiteral:
		for _, e := range n.Elems.Items {
			Walk(e.Expr, v)
		}
	case *ClassLiteral:
		if n.Base != nil {
			Walk(n.Base, v)
		}
		for _, m := range n.Members {
			Walk(m, v)
		}
	case *ClassFieldMember:
		Walk(n.Key, v)
		Walk(n.Value, v)
	case *ClassMethodMember:
		Walk(n.Fn, v)
	case *FunctionLiteral:
		for _, p := range n.Params.Items {
			if p.Default != nil {
				Walk(p.Default, v)
			}
		}
		if n.Body != nil {
			Walk(n.Body, v)
		}
	case *CallExpr:
		Walk(n.Callee, v)
		for _, a := range n.Args.Items {
			Walk(a.Expr, v)
		}
		if n.PostInit != nil {
			Walk(n.PostInit, v)
		}
	case *DelegateExpr:
		Walk(n.Parent, v)
		Walk(n.Table, v)
	case *VectorExpr:
		for _, e := range n.Elems.Items {
			Walk(e.Expr, v)
		}
	case *ExpectExpr:
		Walk(n.Value, v)
	}
}
