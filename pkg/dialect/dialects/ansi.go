// Package dialects builds the concrete, ready-to-use Dialect values this
// engine ships: ansi (the baseline SQL grammar) and scylladb (CQL, built
// by inheriting from ansi and patching in Cassandra/ScyllaDB-specific
// grammar and keywords). Each dialect's keyword sets and lexer matcher
// table are loaded from an embedded YAML file; the grammar graph itself
// is assembled in Go, since a combinator graph isn't naturally data.
package dialects

import (
	_ "embed"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/grammar"
	"github.com/tentacle-scylla/scql/pkg/token"
)

//go:embed ansi.yaml
var ansiConfig []byte

// NewANSI builds the baseline ANSI SQL dialect.
func NewANSI() *dialect.Dialect {
	d := dialect.New("ansi")
	if err := dialect.LoadConfig(d, ansiConfig); err != nil {
		panic(err)
	}
	buildANSIGrammar(d)
	return d
}

func ref(name string) *grammar.Ref { return grammar.NewRef(name) }
func optRef(name string) *grammar.Ref { return grammar.NewRef(name).AsOptional() }

func kw(value string) *grammar.StringParser {
	return grammar.NewStringParser(token.Word, value, token.Keyword)
}

// buildANSIGrammar wires the named grammar graph a parse walks starting
// from FileSegment. Statement coverage follows the node kinds
// enumerated in pkg/token: Select/Insert/Update/Delete/CreateTable/
// AlterTable/DropTable/CreateView/CreateIndex/DropIndex plus the common
// clause and expression grammars they share.
func buildANSIGrammar(d *dialect.Dialect) {
	d.PatchGrammar("FileSegment", grammar.NewNodeMatcher(token.File,
		grammar.NewDelimited(ref("StatementSegment"), grammar.NewStringParser(token.Semicolon, "", token.Semicolon), 0, true),
	))

	d.PatchGrammar("StatementSegment", grammar.NewNodeMatcher(token.Statement, grammar.NewOneOf(
		ref("SelectStatementSegment"),
		ref("InsertStatementSegment"),
		ref("UpdateStatementSegment"),
		ref("DeleteStatementSegment"),
		ref("CreateTableStatementSegment"),
		ref("AlterTableStatementSegment"),
		ref("DropTableStatementSegment"),
		ref("CreateViewStatementSegment"),
		ref("CreateIndexStatementSegment"),
		ref("DropIndexStatementSegment"),
	)))

	// --- SELECT ---
	d.PatchGrammar("SelectStatementSegment", grammar.NewNodeMatcher(token.SelectStatement, grammar.NewSequence(
		grammar.El(kw("SELECT")),
		grammar.El(optRef("DistinctKeywordSegment")),
		grammar.El(ref("SelectClauseSegment")),
		grammar.El(ref("FromClauseSegment")),
		grammar.El(optRef("WhereClauseSegment")),
		grammar.El(optRef("GroupByClauseSegment")),
		grammar.El(optRef("HavingClauseSegment")),
		grammar.El(optRef("OrderByClauseSegment")),
		grammar.El(optRef("LimitClauseSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("DistinctKeywordSegment", kw("DISTINCT"))

	d.PatchGrammar("SelectClauseSegment", grammar.NewNodeMatcher(token.SelectClause,
		grammar.NewDelimited(ref("SelectTargetElementSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false),
	))

	d.PatchGrammar("SelectTargetElementSegment", grammar.NewNodeMatcher(token.SelectTargetElement, grammar.NewOneOf(
		grammar.NewStringParser(token.Star, "", token.Star),
		grammar.NewSequence(
			grammar.El(ref("ExpressionSegment")),
			grammar.El(grammar.NewSequence(
				grammar.El(kw("AS")),
				grammar.El(ref("IdentifierSegment")),
			).WithMode(grammar.Strict)),
		),
		ref("ExpressionSegment"),
	)))

	d.PatchGrammar("FromClauseSegment", grammar.NewNodeMatcher(token.FromClause, grammar.NewSequence(
		grammar.El(kw("FROM")),
		grammar.El(ref("FromExpressionSegment")),
	)))

	d.PatchGrammar("FromExpressionSegment", grammar.NewNodeMatcher(token.FromExpression, grammar.NewSequence(
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(grammar.NewAnyNumberOf(0, 0, ref("JoinClauseSegment"))),
	)))

	d.PatchGrammar("JoinClauseSegment", grammar.NewNodeMatcher(token.JoinClause, grammar.NewSequence(
		grammar.El(grammar.NewAnyNumberOf(0, 1, kw("INNER"), kw("LEFT"), kw("RIGHT"), kw("FULL"), kw("CROSS"))),
		grammar.El(grammar.NewAnyNumberOf(0, 1, kw("OUTER"))),
		grammar.El(kw("JOIN")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(optRef("JoinOnConditionSegment")),
	)))

	d.PatchGrammar("JoinOnConditionSegment", grammar.NewNodeMatcher(token.JoinOnCondition, grammar.NewSequence(
		grammar.El(kw("ON")),
		grammar.El(ref("ExpressionSegment")),
	)))

	d.PatchGrammar("WhereClauseSegment", grammar.NewNodeMatcher(token.WhereClause, grammar.NewSequence(
		grammar.El(kw("WHERE")),
		grammar.El(ref("ExpressionSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("GroupByClauseSegment", grammar.NewNodeMatcher(token.GroupByClause, grammar.NewSequence(
		grammar.El(kw("GROUP")),
		grammar.El(kw("BY")),
		grammar.El(grammar.NewDelimited(ref("ColumnReferenceSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false)),
	)))

	d.PatchGrammar("HavingClauseSegment", grammar.NewNodeMatcher(token.HavingClause, grammar.NewSequence(
		grammar.El(kw("HAVING")),
		grammar.El(ref("ExpressionSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("OrderByClauseSegment", grammar.NewNodeMatcher(token.OrderByClause, grammar.NewSequence(
		grammar.El(kw("ORDER")),
		grammar.El(kw("BY")),
		grammar.El(grammar.NewDelimited(ref("OrderByElementSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false)),
	)))

	d.PatchGrammar("OrderByElementSegment", grammar.NewNodeMatcher(token.OrderByElement, grammar.NewSequence(
		grammar.El(ref("ColumnReferenceSegment")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, kw("ASC"), kw("DESC"))),
	)))

	d.PatchGrammar("LimitClauseSegment", grammar.NewNodeMatcher(token.LimitClause, grammar.NewSequence(
		grammar.El(kw("LIMIT")),
		grammar.El(grammar.NewRegexParser(token.NumericLiteral, numericPattern, token.NumericLiteral)),
	)))

	// --- INSERT ---
	d.PatchGrammar("InsertStatementSegment", grammar.NewNodeMatcher(token.InsertStatement, grammar.NewSequence(
		grammar.El(kw("INSERT")),
		grammar.El(kw("INTO")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(optRef("ColumnReferenceListSegment")),
		grammar.El(kw("VALUES")),
		grammar.El(ref("ExpressionListBracketedSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("ColumnReferenceListSegment", grammar.NewNodeMatcher(token.ColumnReferenceList,
		grammar.NewBracketed(token.StartBracket, token.EndBracket,
			grammar.NewDelimited(ref("ColumnReferenceSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false)),
	))

	d.PatchGrammar("ExpressionListBracketedSegment", grammar.NewNodeMatcher(token.ExpressionList,
		grammar.NewBracketed(token.StartBracket, token.EndBracket,
			grammar.NewDelimited(ref("ExpressionSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false)),
	))

	// --- UPDATE ---
	d.PatchGrammar("UpdateStatementSegment", grammar.NewNodeMatcher(token.UpdateStatement, grammar.NewSequence(
		grammar.El(kw("UPDATE")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(kw("SET")),
		grammar.El(grammar.NewDelimited(ref("SetClauseElementSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false)),
		grammar.El(optRef("WhereClauseSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("SetClauseElementSegment", grammar.NewSequence(
		grammar.El(ref("ColumnReferenceSegment")),
		grammar.El(grammar.NewStringParser(token.ComparisonOperator, "=", token.ComparisonOperator)),
		grammar.El(ref("ExpressionSegment")),
	))

	// --- DELETE ---
	d.PatchGrammar("DeleteStatementSegment", grammar.NewNodeMatcher(token.DeleteStatement, grammar.NewSequence(
		grammar.El(kw("DELETE")),
		grammar.El(kw("FROM")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(optRef("WhereClauseSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	// --- DDL (kept deliberately small: full DDL coverage is out of scope) ---
	d.PatchGrammar("CreateTableStatementSegment", grammar.NewNodeMatcher(token.CreateTableStatement, grammar.NewSequence(
		grammar.El(kw("CREATE")),
		grammar.El(kw("TABLE")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(grammar.NewBracketed(token.StartBracket, token.EndBracket,
			grammar.NewDelimited(ref("ColumnDefinitionSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false))),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("ColumnDefinitionSegment", grammar.NewNodeMatcher(token.ColumnDefinition, grammar.NewSequence(
		grammar.El(ref("IdentifierSegment")),
		grammar.El(ref("DatatypeIdentifierSegment")),
	)))

	d.PatchGrammar("DatatypeIdentifierSegment", grammar.NewNodeMatcher(token.DatatypeIdentifier,
		grammar.NewRegexParser(token.Word, wordPattern, token.Word),
	))

	d.PatchGrammar("AlterTableStatementSegment", grammar.NewNodeMatcher(token.AlterTableStatement, grammar.NewSequence(
		grammar.El(kw("ALTER")),
		grammar.El(kw("TABLE")),
		grammar.El(ref("TableReferenceSegment")),
	).WithMode(grammar.Greedy)))

	d.PatchGrammar("DropTableStatementSegment", grammar.NewNodeMatcher(token.DropTableStatement, grammar.NewSequence(
		grammar.El(kw("DROP")),
		grammar.El(kw("TABLE")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewSequence(grammar.El(kw("IF")), grammar.El(kw("EXISTS"))))),
		grammar.El(ref("TableReferenceSegment")),
	)))

	d.PatchGrammar("CreateViewStatementSegment", grammar.NewNodeMatcher(token.CreateViewStatement, grammar.NewSequence(
		grammar.El(kw("CREATE")),
		grammar.El(kw("VIEW")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(kw("AS")),
		grammar.El(ref("SelectStatementSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("CreateIndexStatementSegment", grammar.NewNodeMatcher(token.CreateIndexStatement, grammar.NewSequence(
		grammar.El(kw("CREATE")),
		grammar.El(kw("INDEX")),
		grammar.El(optRef("IdentifierSegment")),
		grammar.El(kw("ON")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(grammar.NewBracketed(token.StartBracket, token.EndBracket,
			grammar.NewDelimited(ref("ColumnReferenceSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false))),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("DropIndexStatementSegment", grammar.NewNodeMatcher(token.DropIndexStatement, grammar.NewSequence(
		grammar.El(kw("DROP")),
		grammar.El(kw("INDEX")),
		grammar.El(ref("IdentifierSegment")),
	)))

	// --- expressions and references, shared by every statement above ---
	d.PatchGrammar("IdentifierSegment", grammar.NewOneOf(
		grammar.NewRegexParser(token.Word, wordPattern, token.NakedIdentifier),
		grammar.NewRegexParser(token.QuotedIdentifier, anyPattern, token.QuotedIdentifier),
	))

	d.PatchGrammar("ColumnReferenceSegment", grammar.NewNodeMatcher(token.ColumnReference,
		grammar.NewDelimited(ref("IdentifierSegment"), grammar.NewStringParser(token.Dot, "", token.Dot), 0, false),
	))

	d.PatchGrammar("TableReferenceSegment", grammar.NewNodeMatcher(token.TableReference,
		grammar.NewDelimited(ref("IdentifierSegment"), grammar.NewStringParser(token.Dot, "", token.Dot), 0, false),
	))

	d.PatchGrammar("LiteralSegment", grammar.NewNodeMatcher(token.Literal, grammar.NewOneOf(
		grammar.NewRegexParser(token.NumericLiteral, numericPattern, token.NumericLiteral),
		grammar.NewRegexParser(token.StringLiteral, anyPattern, token.StringLiteral),
		grammar.NewNodeMatcher(token.NullLiteral, kw("NULL")),
		grammar.NewNodeMatcher(token.BooleanLiteral, grammar.NewOneOf(kw("TRUE"), kw("FALSE"))),
		grammar.NewStringParser(token.Placeholder, "", token.Placeholder),
	)))

	d.PatchGrammar("FunctionCallSegment", grammar.NewNodeMatcher(token.FunctionCall, grammar.NewSequence(
		grammar.El(grammar.NewNodeMatcher(token.FunctionName, ref("IdentifierSegment"))),
		grammar.El(grammar.NewNodeMatcher(token.FunctionContents,
			grammar.NewBracketed(token.StartBracket, token.EndBracket,
				grammar.NewOneOf(
					grammar.NewStringParser(token.Star, "", token.Star),
					grammar.NewDelimited(ref("ExpressionSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false),
				)),
		)),
	)))

	d.PatchGrammar("CaseExpressionSegment", grammar.NewNodeMatcher(token.CaseExpression, grammar.NewSequence(
		grammar.El(kw("CASE")),
		grammar.El(grammar.NewAnyNumberOf(1, 0, grammar.NewNodeMatcher(token.WhenClause, grammar.NewSequence(
			grammar.El(kw("WHEN")),
			grammar.El(ref("ExpressionSegment")),
			grammar.El(kw("THEN")),
			grammar.El(ref("ExpressionSegment")),
		)))),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewNodeMatcher(token.ElseClause, grammar.NewSequence(
			grammar.El(kw("ELSE")),
			grammar.El(ref("ExpressionSegment")),
		)))),
		grammar.El(kw("END")),
	)))

	d.PatchGrammar("ExpressionSegment", grammar.NewNodeMatcher(token.Expression, grammar.NewDelimited(
		ref("ExpressionOperandSegment"),
		ref("BinaryOperatorSegment"),
		0, false,
	)))

	d.PatchGrammar("ExpressionOperandSegment", grammar.NewOneOf(
		ref("CaseExpressionSegment"),
		ref("FunctionCallSegment"),
		grammar.NewBracketed(token.StartBracket, token.EndBracket, ref("ExpressionSegment")),
		ref("LiteralSegment"),
		ref("ColumnReferenceSegment"),
	))

	d.PatchGrammar("BinaryOperatorSegment", grammar.NewOneOf(
		grammar.NewStringParser(token.ComparisonOperator, "", token.ComparisonOperator),
		grammar.NewNodeMatcher(token.BinaryOperator, kw("AND")),
		grammar.NewNodeMatcher(token.BinaryOperator, kw("OR")),
		grammar.NewNodeMatcher(token.BinaryOperator, kw("LIKE")),
		grammar.NewNodeMatcher(token.BinaryOperator, grammar.NewSequence(grammar.El(kw("IS")), grammar.El(grammar.NewAnyNumberOf(0, 1, kw("NOT"))))),
		grammar.NewNodeMatcher(token.BinaryOperator, grammar.NewSequence(grammar.El(grammar.NewAnyNumberOf(0, 1, kw("NOT"))), grammar.El(kw("IN")))),
		grammar.NewStringParser(token.BinaryOperator, "", token.BinaryOperator),
	))
}
