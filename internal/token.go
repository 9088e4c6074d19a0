package internal

import "fmt"

// tokenType classifies a token
type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, class, else, false, fun, for, if, nil, or,
	// print, return, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = map[tokenType]string{
	tkEOF:          "end of input",
	tkLeftParen:    "'('",
	tkRightParen:   "')'",
	tkLeftBrace:    "'{'",
	tkRightBrace:   "'}'",
	tkComma:        "','",
	tkDot:          "'.'",
	tkMinus:        "'-'",
	tkPlus:         "'+'",
	tkSemicolon:    "';'",
	tkSlash:        "'/'",
	tkStar:         "'*'",
	tkBang:         "'!'",
	tkBangEqual:    "'!='",
	tkEqual:        "'='",
	tkEqualEqual:   "'=='",
	tkGreater:      "'>'",
	tkGreaterEqual: "'>='",
	tkLess:         "'<'",
	tkLessEqual:    "'<='",
	tkIdentifier:   "identifier",
	tkString:       "string",
	tkNumber:       "number",
	tkAnd:          "'and'",
	tkClass:        "'class'",
	tkElse:         "'else'",
	tkFalse:        "'false'",
	tkFun:          "'fun'",
	tkFor:          "'for'",
	tkIf:           "'if'",
	tkNil:          "'nil'",
	tkOr:           "'or'",
	tkPrint:        "'print'",
	tkReturn:       "'return'",
	tkTrue:         "'true'",
	tkVar:          "'var'",
	tkWhile:        "'while'",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	if t.literal != nil {
		return fmt.Sprintf("%d %s %s %v", t.line, t.token, t.lexeme, t.literal)
	}
	return fmt.Sprintf("%d %s %s", t.line, t.token, t.lexeme)
}
