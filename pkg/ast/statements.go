package ast

import (
	"bytes"
)

// ExpressionStatement is a statement consisting of a single expression.
type ExpressionStatement struct {
	Location   SourceLocation
	Expression Expression
}

func (es *ExpressionStatement) Kind() NodeKind       { return KindExpressionStatement }
func (es *ExpressionStatement) Loc() *SourceLocation { return &es.Location }
func (es *ExpressionStatement) String() string {
	if es.Expression == nil {
		return ";"
	}
	return es.Expression.String() + ";"
}
func (es *ExpressionStatement) statementNode() {}

// Directive is a restricted ExpressionStatement whose expression is a
// string Literal, e.g. "use strict". Directive carries the raw directive
// text without quotes.
type Directive struct {
	Location   SourceLocation
	Expression *Literal
	Directive  string
}

func (d *Directive) Kind() NodeKind       { return KindDirective }
func (d *Directive) Loc() *SourceLocation { return &d.Location }
func (d *Directive) String() string       { return "\"" + d.Directive + "\";" }
func (d *Directive) statementNode()       {}

// BlockStatement is a braced statement list.
type BlockStatement struct {
	Location SourceLocation
	Body     []Statement
}

func (bs *BlockStatement) Kind() NodeKind       { return KindBlockStatement }
func (bs *BlockStatement) Loc() *SourceLocation { return &bs.Location }
func (bs *BlockStatement) String() string       { return stringifyBlock(bs.Body) }
func (bs *BlockStatement) statementNode()       {}

// FunctionBody is a BlockStatement whose body may also hold Directives at
// its start. Its body is appended to incrementally while the block is open.
type FunctionBody struct {
	Location SourceLocation
	Body     []Statement
}

// NewFunctionBody creates an empty, open function body.
func NewFunctionBody() FunctionBody {
	return FunctionBody{Body: []Statement{}}
}

func (fb *FunctionBody) Kind() NodeKind       { return KindFunctionBody }
func (fb *FunctionBody) Loc() *SourceLocation { return &fb.Location }
func (fb *FunctionBody) String() string       { return stringifyBlock(fb.Body) }
func (fb *FunctionBody) statementNode()       {}

// EmptyStatement is a lone semicolon.
type EmptyStatement struct {
	Location SourceLocation
}

func (es *EmptyStatement) Kind() NodeKind       { return KindEmptyStatement }
func (es *EmptyStatement) Loc() *SourceLocation { return &es.Location }
func (es *EmptyStatement) String() string       { return ";" }
func (es *EmptyStatement) statementNode()       {}

// DebuggerStatement is the `debugger` statement.
type DebuggerStatement struct {
	Location SourceLocation
}

func (ds *DebuggerStatement) Kind() NodeKind       { return KindDebuggerStatement }
func (ds *DebuggerStatement) Loc() *SourceLocation { return &ds.Location }
func (ds *DebuggerStatement) String() string       { return "debugger;" }
func (ds *DebuggerStatement) statementNode()       {}

// WithStatement is the `with (object) body` statement.
type WithStatement struct {
	Location SourceLocation
	Object   Expression
	Body     Statement
}

func (ws *WithStatement) Kind() NodeKind       { return KindWithStatement }
func (ws *WithStatement) Loc() *SourceLocation { return &ws.Location }
func (ws *WithStatement) String() string {
	return "with (" + ws.Object.String() + ") " + ws.Body.String()
}
func (ws *WithStatement) statementNode() {}

// ReturnStatement is `return` with an optional argument.
type ReturnStatement struct {
	Location SourceLocation
	Argument Expression // nil when returning without a value
}

func (rs *ReturnStatement) Kind() NodeKind       { return KindReturnStatement }
func (rs *ReturnStatement) Loc() *SourceLocation { return &rs.Location }
func (rs *ReturnStatement) String() string {
	if rs.Argument == nil {
		return "return;"
	}
	return "return " + rs.Argument.String() + ";"
}
func (rs *ReturnStatement) statementNode() {}

// LabeledStatement is `label: body`.
type LabeledStatement struct {
	Location SourceLocation
	Label    Identifier
	Body     Statement
}

func (ls *LabeledStatement) Kind() NodeKind       { return KindLabeledStatement }
func (ls *LabeledStatement) Loc() *SourceLocation { return &ls.Location }
func (ls *LabeledStatement) String() string {
	return ls.Label.Name + ": " + ls.Body.String()
}
func (ls *LabeledStatement) statementNode() {}

// BreakStatement is `break` with an optional label.
type BreakStatement struct {
	Location SourceLocation
	Label    *Identifier // nil for an unlabeled break
}

func (bs *BreakStatement) Kind() NodeKind       { return KindBreakStatement }
func (bs *BreakStatement) Loc() *SourceLocation { return &bs.Location }
func (bs *BreakStatement) String() string {
	if bs.Label == nil {
		return "break;"
	}
	return "break " + bs.Label.Name + ";"
}
func (bs *BreakStatement) statementNode() {}

// ContinueStatement is `continue` with an optional label.
type ContinueStatement struct {
	Location SourceLocation
	Label    *Identifier // nil for an unlabeled continue
}

func (cs *ContinueStatement) Kind() NodeKind       { return KindContinueStatement }
func (cs *ContinueStatement) Loc() *SourceLocation { return &cs.Location }
func (cs *ContinueStatement) String() string {
	if cs.Label == nil {
		return "continue;"
	}
	return "continue " + cs.Label.Name + ";"
}
func (cs *ContinueStatement) statementNode() {}

// IfStatement is `if (test) consequent [else alternate]`.
type IfStatement struct {
	Location   SourceLocation
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil when there is no else branch
}

func (is *IfStatement) Kind() NodeKind       { return KindIfStatement }
func (is *IfStatement) Loc() *SourceLocation { return &is.Location }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(is.Test.String())
	out.WriteString(") ")
	out.WriteString(is.Consequent.String())
	if is.Alternate != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternate.String())
	}
	return out.String()
}
func (is *IfStatement) statementNode() {}

// SwitchStatement is `switch (discriminant) { cases }`.
type SwitchStatement struct {
	Location     SourceLocation
	Discriminant Expression
	Cases        []SwitchCase
}

func (ss *SwitchStatement) Kind() NodeKind       { return KindSwitchStatement }
func (ss *SwitchStatement) Loc() *SourceLocation { return &ss.Location }
func (ss *SwitchStatement) String() string {
	var out bytes.Buffer
	out.WriteString("switch (")
	out.WriteString(ss.Discriminant.String())
	out.WriteString(") {\n")
	for i := range ss.Cases {
		out.WriteString(ss.Cases[i].String())
	}
	out.WriteString("}")
	return out.String()
}
func (ss *SwitchStatement) statementNode() {}

// SwitchCase is one `case test:` (or `default:` when Test is nil) arm.
type SwitchCase struct {
	Location   SourceLocation
	Test       Expression // nil for the default arm
	Consequent []Statement
}

func (sc *SwitchCase) Kind() NodeKind       { return KindSwitchCase }
func (sc *SwitchCase) Loc() *SourceLocation { return &sc.Location }
func (sc *SwitchCase) String() string {
	var out bytes.Buffer
	if sc.Test == nil {
		out.WriteString("default:\n")
	} else {
		out.WriteString("case " + sc.Test.String() + ":\n")
	}
	for _, s := range sc.Consequent {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// ThrowStatement is `throw argument`.
type ThrowStatement struct {
	Location SourceLocation
	Argument Expression
}

func (ts *ThrowStatement) Kind() NodeKind       { return KindThrowStatement }
func (ts *ThrowStatement) Loc() *SourceLocation { return &ts.Location }
func (ts *ThrowStatement) String() string       { return "throw " + ts.Argument.String() + ";" }
func (ts *ThrowStatement) statementNode()       {}

// TryStatement is `try block [catch handler] [finally finalizer]`.
type TryStatement struct {
	Location  SourceLocation
	Block     BlockStatement
	Handler   *CatchClause    // nil when there is no catch
	Finalizer *BlockStatement // nil when there is no finally
}

func (ts *TryStatement) Kind() NodeKind       { return KindTryStatement }
func (ts *TryStatement) Loc() *SourceLocation { return &ts.Location }
func (ts *TryStatement) String() string {
	var out bytes.Buffer
	out.WriteString("try ")
	out.WriteString(ts.Block.String())
	if ts.Handler != nil {
		out.WriteString(" ")
		out.WriteString(ts.Handler.String())
	}
	if ts.Finalizer != nil {
		out.WriteString(" finally ")
		out.WriteString(ts.Finalizer.String())
	}
	return out.String()
}
func (ts *TryStatement) statementNode() {}

// CatchClause is `catch (param) body`.
type CatchClause struct {
	Location SourceLocation
	Param    Pattern
	Body     BlockStatement
}

func (cc *CatchClause) Kind() NodeKind       { return KindCatchClause }
func (cc *CatchClause) Loc() *SourceLocation { return &cc.Location }
func (cc *CatchClause) String() string {
	return "catch (" + cc.Param.String() + ") " + cc.Body.String()
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Location SourceLocation
	Test     Expression
	Body     Statement
}

func (ws *WhileStatement) Kind() NodeKind       { return KindWhileStatement }
func (ws *WhileStatement) Loc() *SourceLocation { return &ws.Location }
func (ws *WhileStatement) String() string {
	return "while (" + ws.Test.String() + ") " + ws.Body.String()
}
func (ws *WhileStatement) statementNode() {}

// DoWhileStatement is `do body while (test)`.
type DoWhileStatement struct {
	Location SourceLocation
	Body     Statement
	Test     Expression
}

func (dw *DoWhileStatement) Kind() NodeKind       { return KindDoWhileStatement }
func (dw *DoWhileStatement) Loc() *SourceLocation { return &dw.Location }
func (dw *DoWhileStatement) String() string {
	return "do " + dw.Body.String() + " while (" + dw.Test.String() + ");"
}
func (dw *DoWhileStatement) statementNode() {}

// ForInit is the init clause of a ForStatement: absent (nil *ForInit), a
// VariableDeclaration, or an Expression. Exactly one field is set.
type ForInit struct {
	Declaration *VariableDeclaration
	Expression  Expression
}

func (fi *ForInit) String() string {
	if fi == nil {
		return ""
	}
	if fi.Declaration != nil {
		return fi.Declaration.stringNoSemi()
	}
	if fi.Expression != nil {
		return fi.Expression.String()
	}
	return ""
}

// ForStatement is the classic three-clause for loop.
type ForStatement struct {
	Location SourceLocation
	Init     *ForInit   // nil when absent
	Test     Expression // nil when absent
	Update   Expression // nil when absent
	Body     Statement
}

func (fs *ForStatement) Kind() NodeKind       { return KindForStatement }
func (fs *ForStatement) Loc() *SourceLocation { return &fs.Location }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	out.WriteString(fs.Init.String())
	out.WriteString("; ")
	if fs.Test != nil {
		out.WriteString(fs.Test.String())
	}
	out.WriteString("; ")
	if fs.Update != nil {
		out.WriteString(fs.Update.String())
	}
	out.WriteString(") ")
	out.WriteString(fs.Body.String())
	return out.String()
}
func (fs *ForStatement) statementNode() {}

// ForInLeft is the left clause of a ForInStatement: a VariableDeclaration
// or an Expression. Exactly one field is set.
type ForInLeft struct {
	Declaration *VariableDeclaration
	Expression  Expression
}

func (fl ForInLeft) String() string {
	if fl.Declaration != nil {
		return fl.Declaration.stringNoSemi()
	}
	if fl.Expression != nil {
		return fl.Expression.String()
	}
	return ""
}

// ForInStatement is `for (left in right) body`.
type ForInStatement struct {
	Location SourceLocation
	Left     ForInLeft
	Right    Expression
	Body     Statement
}

func (fi *ForInStatement) Kind() NodeKind       { return KindForInStatement }
func (fi *ForInStatement) Loc() *SourceLocation { return &fi.Location }
func (fi *ForInStatement) String() string {
	return "for (" + fi.Left.String() + " in " + fi.Right.String() + ") " + fi.Body.String()
}
func (fi *ForInStatement) statementNode() {}

// FunctionDeclaration is `function id(params) body`.
type FunctionDeclaration struct {
	Location SourceLocation
	ID       Identifier
	Params   []Pattern
	Body     FunctionBody
}

// NewFunctionDeclaration creates the placeholder declaration the minimal
// grammar pushes when a bare name is seen: no parameters, empty body.
func NewFunctionDeclaration(id Identifier) *FunctionDeclaration {
	return &FunctionDeclaration{
		ID:     id,
		Params: []Pattern{},
		Body:   NewFunctionBody(),
	}
}

func (fd *FunctionDeclaration) Kind() NodeKind       { return KindFunctionDeclaration }
func (fd *FunctionDeclaration) Loc() *SourceLocation { return &fd.Location }
func (fd *FunctionDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(fd.ID.Name)
	out.WriteString("(")
	for i, p := range fd.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(") ")
	out.WriteString(fd.Body.String())
	return out.String()
}
func (fd *FunctionDeclaration) statementNode()   {}
func (fd *FunctionDeclaration) declarationNode() {}

// VariableDeclaration is `var/let/const declarations`.
type VariableDeclaration struct {
	Location     SourceLocation
	Declarations []VariableDeclarator
	DeclKind     DeclarationKind
}

func (vd *VariableDeclaration) Kind() NodeKind       { return KindVariableDeclaration }
func (vd *VariableDeclaration) Loc() *SourceLocation { return &vd.Location }
func (vd *VariableDeclaration) String() string       { return vd.stringNoSemi() + ";" }
func (vd *VariableDeclaration) stringNoSemi() string {
	var out bytes.Buffer
	out.WriteString(string(vd.DeclKind))
	out.WriteString(" ")
	for i := range vd.Declarations {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(vd.Declarations[i].String())
	}
	return out.String()
}
func (vd *VariableDeclaration) statementNode()   {}
func (vd *VariableDeclaration) declarationNode() {}

// VariableDeclarator is one `id [= init]` binding.
type VariableDeclarator struct {
	Location SourceLocation
	ID       Pattern
	Init     Expression // nil when declared without an initializer
}

func (vd *VariableDeclarator) Kind() NodeKind       { return KindVariableDeclarator }
func (vd *VariableDeclarator) Loc() *SourceLocation { return &vd.Location }
func (vd *VariableDeclarator) String() string {
	if vd.Init == nil {
		return vd.ID.String()
	}
	return vd.ID.String() + " = " + vd.Init.String()
}

func stringifyBlock(body []Statement) string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range body {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
