// Package grammar defines the fixed context-free grammar for the
// teaching language as a compile-time constant: a static mapping from
// each non-terminal to its ordered list of alternative productions.
package grammar

import "github.com/langfront/compilerfront/internal/token"

// NonTerminal is a dense enumeration identifying one left-hand side of
// the grammar. Using an identifier enumeration (rather than dispatch
// polymorphism) keeps FIRST/FOLLOW/table storage as simple array/map
// lookups.
type NonTerminal int

const (
	START NonTerminal = iota
	prog
	classList
	classDecl
	classInheritOpt
	classInheritTail
	classMemberList
	visibility
	memberDecl
	funcDeclTail
	funcDefList
	funcDef
	funcHead
	funcHeadTail
	funcHeadReturn
	funcBody
	localDeclOpt
	varDeclList
	varDecl
	varArrayList
	arraySize
	arraySizeTail
	type_
	typeNoID
	statement
	statementEnd
	statBlock
	stmtList
	expr
	exprRelTail
	relOp
	arithExpr
	arithExprTail
	addOp
	term
	termTail
	multOp
	factor
	sign
	variable
	postfix
	postfixList
	postfixNoCall
	postfixListNoCall
	fParams
	fParamsTail
	fParamsArrayList
	aParams
	aParamsTail
	indice
	assignOp
	numNonTerminals
)

var names = map[NonTerminal]string{
	START:              "START",
	prog:               "prog",
	classList:          "classList",
	classDecl:          "classDecl",
	classInheritOpt:    "classInheritOpt",
	classInheritTail:   "classInheritTail",
	classMemberList:    "classMemberList",
	visibility:         "visibility",
	memberDecl:         "memberDecl",
	funcDeclTail:       "funcDeclTail",
	funcDefList:        "funcDefList",
	funcDef:            "funcDef",
	funcHead:           "funcHead",
	funcHeadTail:       "funcHeadTail",
	funcHeadReturn:     "funcHeadReturn",
	funcBody:           "funcBody",
	localDeclOpt:       "localDeclOpt",
	varDeclList:        "varDeclList",
	varDecl:            "varDecl",
	varArrayList:       "varArrayList",
	arraySize:          "arraySize",
	arraySizeTail:      "arraySizeTail",
	type_:              "type",
	typeNoID:           "type_no_id",
	statement:          "statement",
	statementEnd:       "statementEnd",
	statBlock:          "statBlock",
	stmtList:           "stmtList",
	expr:               "expr",
	exprRelTail:        "exprRelTail",
	relOp:              "relOp",
	arithExpr:          "arithExpr",
	arithExprTail:      "arithExprTail",
	addOp:              "addOp",
	term:               "term",
	termTail:           "termTail",
	multOp:             "multOp",
	factor:             "factor",
	sign:               "sign",
	variable:           "variable",
	postfix:            "postfix",
	postfixList:        "postfixList",
	postfixNoCall:      "postfixNoCall",
	postfixListNoCall:  "postfixListNoCall",
	fParams:            "fParams",
	fParamsTail:        "fParamsTail",
	fParamsArrayList:   "fParamsArrayList",
	aParams:            "aParams",
	aParamsTail:        "aParamsTail",
	indice:             "indice",
	assignOp:           "assignOp",
}

// String returns the grammar's own spelling of nt, e.g. "aParamsTail".
func (nt NonTerminal) String() string {
	if s, ok := names[nt]; ok {
		return s
	}
	return "?"
}

// Symbol is a tagged union of a terminal (a token.Kind) and a
// non-terminal (a NonTerminal).
type Symbol struct {
	IsTerminal bool
	Terminal   token.Kind
	NonTerm    NonTerminal
}

// T builds a terminal symbol.
func T(k token.Kind) Symbol { return Symbol{IsTerminal: true, Terminal: k} }

// N builds a non-terminal symbol.
func N(nt NonTerminal) Symbol { return Symbol{IsTerminal: false, NonTerm: nt} }

func (s Symbol) String() string {
	if s.IsTerminal {
		return s.Terminal.String()
	}
	return s.NonTerm.String()
}

// Production is one ordered right-hand-side alternative. A nil or
// zero-length Production denotes epsilon.
type Production []Symbol

// All is the complete, compile-time-constant production table, one
// entry per non-terminal. Productions are listed in the order in which
// they must be tried by a would-be recursive-descent parser (not that
// this parser is recursive-descent — the order also fixes the
// deterministic iteration used when materializing the LL(1) table, so
// that a conflicting overwrite is reported against a stable "first"
// production).
var All = map[NonTerminal][]Production{
	START: {
		{N(prog)},
	},
	prog: {
		{N(classList), N(funcDefList), T(token.MAIN), N(funcBody)},
	},
	classList: {
		{N(classDecl), N(classList)},
		{},
	},
	classDecl: {
		{T(token.CLASS), T(token.ID), N(classInheritOpt), T(token.OPEN_BRACE), N(classMemberList), T(token.CLOSE_BRACE), T(token.SEMICOLON)},
	},
	classInheritOpt: {
		{T(token.INHERITS), T(token.ID), N(classInheritTail)},
		{},
	},
	classInheritTail: {
		{T(token.COMMA), T(token.ID), N(classInheritTail)},
		{},
	},
	classMemberList: {
		{N(visibility), N(memberDecl), N(classMemberList)},
		{},
	},
	visibility: {
		{T(token.PUBLIC)},
		{T(token.PRIVATE)},
	},
	memberDecl: {
		{T(token.ID), T(token.OPEN_PARENTHESIS), N(fParams), T(token.CLOSE_PARENTHESIS), T(token.COLON), N(funcDeclTail)},
		{N(typeNoID), T(token.ID), N(varArrayList), T(token.SEMICOLON)},
	},
	funcDeclTail: {
		{N(type_), T(token.SEMICOLON)},
		{T(token.VOID), T(token.SEMICOLON)},
	},
	funcDefList: {
		{N(funcDef), N(funcDefList)},
		{},
	},
	funcDef: {
		{N(funcHead), N(funcBody), T(token.SEMICOLON)},
	},
	funcHead: {
		{T(token.ID), N(funcHeadTail)},
	},
	funcHeadTail: {
		{T(token.DOUBLE_COLON), T(token.ID), T(token.OPEN_PARENTHESIS), N(fParams), T(token.CLOSE_PARENTHESIS), T(token.COLON), N(funcHeadReturn)},
		{T(token.OPEN_PARENTHESIS), N(fParams), T(token.CLOSE_PARENTHESIS), T(token.COLON), N(funcHeadReturn)},
	},
	funcHeadReturn: {
		{N(type_)},
		{T(token.VOID)},
	},
	funcBody: {
		{N(localDeclOpt), T(token.DO), N(stmtList), T(token.END)},
	},
	localDeclOpt: {
		{T(token.LOCAL), N(varDeclList)},
		{},
	},
	varDeclList: {
		{N(varDecl), N(varDeclList)},
		{},
	},
	varDecl: {
		{N(type_), T(token.ID), N(varArrayList), T(token.SEMICOLON)},
	},
	varArrayList: {
		{N(arraySize), N(varArrayList)},
		{},
	},
	arraySize: {
		{T(token.OPEN_BRACKET), N(arraySizeTail)},
	},
	arraySizeTail: {
		{T(token.INT_NUM), T(token.CLOSE_BRACKET)},
		{T(token.CLOSE_BRACKET)},
	},
	type_: {
		{T(token.INTEGER)},
		{T(token.FLOAT)},
		{T(token.ID)},
	},
	typeNoID: {
		{T(token.INTEGER)},
		{T(token.FLOAT)},
	},
	statement: {
		{T(token.ID), N(postfixList), N(statementEnd)},
		{T(token.IF), T(token.OPEN_PARENTHESIS), N(expr), T(token.CLOSE_PARENTHESIS), T(token.THEN), N(statBlock), T(token.ELSE), N(statBlock), T(token.SEMICOLON)},
		{T(token.WHILE), T(token.OPEN_PARENTHESIS), N(expr), T(token.CLOSE_PARENTHESIS), N(statBlock), T(token.SEMICOLON)},
		{T(token.READ), T(token.OPEN_PARENTHESIS), N(variable), T(token.CLOSE_PARENTHESIS), T(token.SEMICOLON)},
		{T(token.WRITE), T(token.OPEN_PARENTHESIS), N(expr), T(token.CLOSE_PARENTHESIS), T(token.SEMICOLON)},
		{T(token.RETURN), T(token.OPEN_PARENTHESIS), N(expr), T(token.CLOSE_PARENTHESIS), T(token.SEMICOLON)},
	},
	statementEnd: {
		{N(assignOp), N(expr), T(token.SEMICOLON)},
		{T(token.SEMICOLON)},
	},
	statBlock: {
		{T(token.DO), N(stmtList), T(token.END)},
		{N(statement)},
		{},
	},
	stmtList: {
		{N(statement), N(stmtList)},
		{},
	},
	expr: {
		{N(arithExpr), N(exprRelTail)},
	},
	exprRelTail: {
		{N(relOp), N(arithExpr)},
		{},
	},
	relOp: {
		{T(token.EQUAL)},
		{T(token.NOT_EQUAL)},
		{T(token.LESS_THAN)},
		{T(token.GREATER_THAN)},
		{T(token.LESS_EQUAL)},
		{T(token.GREATER_EQUAL)},
	},
	arithExpr: {
		{N(term), N(arithExprTail)},
	},
	arithExprTail: {
		{N(addOp), N(term), N(arithExprTail)},
		{},
	},
	addOp: {
		{T(token.PLUS)},
		{T(token.MINUS)},
		{T(token.OR)},
	},
	term: {
		{N(factor), N(termTail)},
	},
	termTail: {
		{N(multOp), N(factor), N(termTail)},
		{},
	},
	multOp: {
		{T(token.MULTIPLY)},
		{T(token.DIVIDE)},
		{T(token.AND)},
	},
	factor: {
		{T(token.ID), N(postfixList)},
		{T(token.INT_NUM)},
		{T(token.FLOAT_NUM)},
		{T(token.OPEN_PARENTHESIS), N(arithExpr), T(token.CLOSE_PARENTHESIS)},
		{T(token.NOT), N(factor)},
		{N(sign), N(factor)},
	},
	sign: {
		{T(token.PLUS)},
		{T(token.MINUS)},
	},
	variable: {
		{T(token.ID), N(postfixListNoCall)},
	},
	postfix: {
		{T(token.OPEN_PARENTHESIS), N(aParams), T(token.CLOSE_PARENTHESIS)},
		{T(token.OPEN_BRACKET), N(arithExpr), T(token.CLOSE_BRACKET)},
		{T(token.DOT), T(token.ID)},
	},
	postfixList: {
		{N(postfix), N(postfixList)},
		{},
	},
	postfixNoCall: {
		{T(token.OPEN_BRACKET), N(arithExpr), T(token.CLOSE_BRACKET)},
		{T(token.DOT), T(token.ID)},
	},
	postfixListNoCall: {
		{N(postfixNoCall), N(postfixListNoCall)},
		{},
	},
	fParams: {
		{N(type_), T(token.ID), N(fParamsArrayList), N(fParamsTail)},
		{},
	},
	fParamsTail: {
		{T(token.COMMA), N(type_), T(token.ID), N(fParamsArrayList), N(fParamsTail)},
		{},
	},
	fParamsArrayList: {
		{N(arraySize), N(fParamsArrayList)},
		{},
	},
	aParams: {
		{N(expr), N(aParamsTail)},
		{},
	},
	aParamsTail: {
		{T(token.COMMA), N(expr), N(aParamsTail)},
		{},
	},
	indice: {
		{T(token.OPEN_BRACKET), N(arithExpr), T(token.CLOSE_BRACKET)},
	},
	assignOp: {
		{T(token.ASSIGN)},
	},
}

// NumNonTerminals is the count of distinct non-terminals in the
// grammar, useful for sizing dense per-non-terminal tables.
const NumNonTerminals = int(numNonTerminals)
