package smiles

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// chainExpr is a straight-line run of atoms, each optionally followed by
// ring-closure digits and parenthesized branches — a linear parse tree
// close enough to the SMILES text that the builder below needs no
// backtracking of its own.
type chainExpr struct {
	Atoms []*atomExpr `@@+`
}

// atomExpr is one atom together with the bond that introduces it (empty
// for an implicit single bond), any ring-closure marks attached to it, and
// any branches hanging off it before the chain continues.
type atomExpr struct {
	Bond     string       `@Bond?`
	Element  string       `@Element`
	Rings    []string     `@Digit*`
	Branches []*chainExpr `("(" @@ ")")*`
}

var smilesLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Bond", Pattern: `[-=#]`},
	{Name: "Element", Pattern: `Cl|Br|[BCNOFPSI]`},
	{Name: "Digit", Pattern: `[0-9]`},
	{Name: "Punct", Pattern: `[()]`},
})

var smilesParser = participle.MustBuild[chainExpr](participle.Lexer(smilesLexer))
