package dialects

import (
	_ "embed"

	"github.com/tentacle-scylla/scql/pkg/dialect"
	"github.com/tentacle-scylla/scql/pkg/grammar"
	"github.com/tentacle-scylla/scql/pkg/token"
)

//go:embed scylladb.yaml
var scyllaConfig []byte

// NewScyllaDB builds the CQL dialect by deep-copying ansi's tables and
// patching in Cassandra/ScyllaDB-specific keywords, lexer matchers, and
// statement grammars (USE, keyspace DDL, BATCH, GRANT/REVOKE, and the
// CQL-flavored SELECT/INSERT/UPDATE/DELETE extensions: USING TTL/TIMESTAMP
// and ALLOW FILTERING).
func NewScyllaDB() *dialect.Dialect {
	ansi := NewANSI()
	d := dialect.New("scylladb").CopyFrom(ansi)
	if err := dialect.LoadConfig(d, scyllaConfig); err != nil {
		panic(err)
	}
	buildScyllaGrammar(d)
	return d
}

func buildScyllaGrammar(d *dialect.Dialect) {
	d.PatchGrammar("StatementSegment", grammar.NewNodeMatcher(token.Statement, grammar.NewOneOf(
		ref("UseStatementSegment"),
		ref("SelectStatementSegment"),
		ref("InsertStatementSegment"),
		ref("UpdateStatementSegment"),
		ref("DeleteStatementSegment"),
		ref("BatchStatementSegment"),
		ref("CreateKeyspaceStatementSegment"),
		ref("CreateTableStatementSegment"),
		ref("AlterTableStatementSegment"),
		ref("DropTableStatementSegment"),
		ref("DropKeyspaceStatementSegment"),
		ref("GrantStatementSegment"),
		ref("RevokeStatementSegment"),
	)))

	// USE keyspace;
	d.PatchGrammar("UseStatementSegment", grammar.NewNodeMatcher(token.UseStatement, grammar.NewSequence(
		grammar.El(kw("USE")),
		grammar.El(ref("KeyspaceReferenceSegment")),
	)))

	d.PatchGrammar("KeyspaceReferenceSegment", grammar.NewNodeMatcher(token.KeyspaceReference, ref("IdentifierSegment")))

	// SELECT extends the ansi grammar with USING TTL/TIMESTAMP-free read
	// path plus the trailing ALLOW FILTERING clause CQL allows on any
	// WHERE-bearing read.
	d.PatchGrammar("SelectStatementSegment", grammar.NewNodeMatcher(token.SelectStatement, grammar.NewSequence(
		grammar.El(kw("SELECT")),
		grammar.El(optRef("DistinctKeywordSegment")),
		grammar.El(ref("SelectClauseSegment")),
		grammar.El(ref("FromClauseSegment")),
		grammar.El(optRef("WhereClauseSegment")),
		grammar.El(optRef("GroupByClauseSegment")),
		grammar.El(optRef("OrderByClauseSegment")),
		grammar.El(optRef("LimitClauseSegment")),
		grammar.El(optRef("AllowFilteringClauseSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("AllowFilteringClauseSegment", grammar.NewNodeMatcher(token.AllowFilteringClause, grammar.NewSequence(
		grammar.El(kw("ALLOW")),
		grammar.El(kw("FILTERING")),
	)))

	// INSERT ... [USING TTL n [AND TIMESTAMP n]]
	d.PatchGrammar("InsertStatementSegment", grammar.NewNodeMatcher(token.InsertStatement, grammar.NewSequence(
		grammar.El(kw("INSERT")),
		grammar.El(kw("INTO")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(optRef("ColumnReferenceListSegment")),
		grammar.El(kw("VALUES")),
		grammar.El(ref("ExpressionListBracketedSegment")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewSequence(
			grammar.El(kw("IF")), grammar.El(kw("NOT")), grammar.El(kw("EXISTS")),
		))),
		grammar.El(optRef("UsingClauseSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("UsingClauseSegment", grammar.NewNodeMatcher(token.UsingClause, grammar.NewSequence(
		grammar.El(kw("USING")),
		grammar.El(grammar.NewDelimited(ref("UsingOptionSegment"), kw("AND"), 0, false)),
	)))

	d.PatchGrammar("UsingOptionSegment", grammar.NewOneOf(
		grammar.NewSequence(grammar.El(kw("TTL")), grammar.El(grammar.NewRegexParser(token.NumericLiteral, numericPattern, token.NumericLiteral))),
		grammar.NewSequence(grammar.El(kw("TIMESTAMP")), grammar.El(grammar.NewRegexParser(token.NumericLiteral, numericPattern, token.NumericLiteral))),
	))

	// UPDATE table [USING ...] SET ... WHERE ...
	d.PatchGrammar("UpdateStatementSegment", grammar.NewNodeMatcher(token.UpdateStatement, grammar.NewSequence(
		grammar.El(kw("UPDATE")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(optRef("UsingClauseSegment")),
		grammar.El(kw("SET")),
		grammar.El(grammar.NewDelimited(ref("SetClauseElementSegment"), grammar.NewStringParser(token.Comma, "", token.Comma), 0, false)),
		grammar.El(optRef("WhereClauseSegment")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewSequence(grammar.El(kw("IF")), grammar.El(ref("ExpressionSegment"))))),
	).WithMode(grammar.GreedyOnceStarted)))

	// DELETE [cols] FROM table [USING TIMESTAMP n] WHERE ...
	d.PatchGrammar("DeleteStatementSegment", grammar.NewNodeMatcher(token.DeleteStatement, grammar.NewSequence(
		grammar.El(kw("DELETE")),
		grammar.El(optRef("ColumnReferenceListSegment")),
		grammar.El(kw("FROM")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(optRef("UsingClauseSegment")),
		grammar.El(optRef("WhereClauseSegment")),
	).WithMode(grammar.GreedyOnceStarted)))

	// BEGIN [UNLOGGED|COUNTER] BATCH ... APPLY BATCH
	d.PatchGrammar("BatchStatementSegment", grammar.NewNodeMatcher(token.BatchStatement, grammar.NewSequence(
		grammar.El(kw("BEGIN")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, kw("UNLOGGED"), kw("COUNTER"))),
		grammar.El(kw("BATCH")),
		grammar.El(grammar.NewDelimited(
			grammar.NewOneOf(ref("InsertStatementSegment"), ref("UpdateStatementSegment"), ref("DeleteStatementSegment")),
			grammar.NewStringParser(token.Semicolon, "", token.Semicolon), 0, true,
		)),
		grammar.El(kw("APPLY")),
		grammar.El(kw("BATCH")),
	).WithMode(grammar.GreedyOnceStarted)))

	// CREATE KEYSPACE name WITH replication = {...} [AND durable_writes = bool]
	d.PatchGrammar("CreateKeyspaceStatementSegment", grammar.NewNodeMatcher(token.CreateKeyspaceStatement, grammar.NewSequence(
		grammar.El(kw("CREATE")),
		grammar.El(kw("KEYSPACE")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewSequence(grammar.El(kw("IF")), grammar.El(kw("NOT")), grammar.El(kw("EXISTS"))))),
		grammar.El(ref("KeyspaceReferenceSegment")),
		grammar.El(kw("WITH")),
		grammar.El(kw("REPLICATION")),
		grammar.El(grammar.NewStringParser(token.ComparisonOperator, "=", token.ComparisonOperator)),
		grammar.El(ref("ReplicationMapLiteralSegment")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewSequence(
			grammar.El(kw("AND")),
			grammar.El(kw("DURABLE_WRITES")),
			grammar.El(grammar.NewStringParser(token.ComparisonOperator, "=", token.ComparisonOperator)),
			grammar.El(ref("LiteralSegment")),
		))),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("ReplicationMapLiteralSegment", grammar.NewNodeMatcher(token.ReplicationMapLiteral,
		grammar.NewBracketed(token.StartCurlyBracket, token.EndCurlyBracket, grammar.NewAnything()),
	))

	d.PatchGrammar("DropKeyspaceStatementSegment", grammar.NewNodeMatcher(token.DropKeyspaceStatement, grammar.NewSequence(
		grammar.El(kw("DROP")),
		grammar.El(kw("KEYSPACE")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewSequence(grammar.El(kw("IF")), grammar.El(kw("EXISTS"))))),
		grammar.El(ref("KeyspaceReferenceSegment")),
	)))

	// CREATE TABLE with a PRIMARY KEY clause, the one CQL-specific
	// addition a relational CREATE TABLE doesn't need.
	d.PatchGrammar("CreateTableStatementSegment", grammar.NewNodeMatcher(token.CreateTableStatement, grammar.NewSequence(
		grammar.El(kw("CREATE")),
		grammar.El(kw("TABLE")),
		grammar.El(grammar.NewAnyNumberOf(0, 1, grammar.NewSequence(grammar.El(kw("IF")), grammar.El(kw("NOT")), grammar.El(kw("EXISTS"))))),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(grammar.NewBracketed(token.StartBracket, token.EndBracket, grammar.NewSequence(
			grammar.El(grammar.NewDelimited(
				grammar.NewOneOf(ref("PrimaryKeyClauseSegment"), ref("ColumnDefinitionSegment")),
				grammar.NewStringParser(token.Comma, "", token.Comma), 0, false,
			)),
		))),
	).WithMode(grammar.GreedyOnceStarted)))

	d.PatchGrammar("PrimaryKeyClauseSegment", grammar.NewNodeMatcher(token.PrimaryKeyClause, grammar.NewSequence(
		grammar.El(kw("PRIMARY")),
		grammar.El(kw("KEY")),
		grammar.El(grammar.NewBracketed(token.StartBracket, token.EndBracket, grammar.NewAnything())),
	)))

	d.PatchGrammar("GrantStatementSegment", grammar.NewNodeMatcher(token.GrantStatement, grammar.NewSequence(
		grammar.El(kw("GRANT")),
		grammar.El(ref("IdentifierSegment")),
		grammar.El(kw("ON")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(kw("TO")),
		grammar.El(ref("IdentifierSegment")),
	)))

	d.PatchGrammar("RevokeStatementSegment", grammar.NewNodeMatcher(token.RevokeStatement, grammar.NewSequence(
		grammar.El(kw("REVOKE")),
		grammar.El(ref("IdentifierSegment")),
		grammar.El(kw("ON")),
		grammar.El(ref("TableReferenceSegment")),
		grammar.El(kw("FROM")),
		grammar.El(ref("IdentifierSegment")),
	)))
}
