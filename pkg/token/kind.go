// Package token defines the closed SyntaxKind enumeration and the Token
// type that the lexer emits and the grammar engine consumes.
package token

// SyntaxKind is the closed enumeration spanning both lexer token kinds and
// parser node kinds. Dialects compose existing kinds; they never add
// new ones.
type SyntaxKind uint16

const (
	Unknown SyntaxKind = iota

	// --- token (leaf) kinds ---

	Word
	Keyword
	NakedIdentifier
	QuotedIdentifier
	NumericLiteral
	StringLiteral
	CodeBlock
	Symbol
	Operator
	StartBracket
	EndBracket
	StartSquareBracket
	EndSquareBracket
	StartCurlyBracket
	EndCurlyBracket
	Comma
	Dot
	Colon
	Semicolon
	Star
	Placeholder
	Newline
	Whitespace
	InlineComment
	BlockComment
	EndOfFile
	Unlexable

	// --- meta (zero-width) kinds ---

	Indent
	Dedent
	Implicit

	// --- node (interior) kinds ---

	File
	Unparsable
	Statement
	SelectStatement
	InsertStatement
	UpdateStatement
	DeleteStatement
	CreateTableStatement
	AlterTableStatement
	DropTableStatement
	CreateViewStatement
	CreateIndexStatement
	DropIndexStatement
	WithCompoundStatement
	SelectClause
	SelectTargetElement
	FromClause
	FromExpression
	JoinClause
	JoinOnCondition
	WhereClause
	GroupByClause
	HavingClause
	OrderByClause
	OrderByElement
	LimitClause
	ColumnReference
	TableReference
	ColumnDefinition
	ColumnConstraint
	TableConstraint
	DatatypeIdentifier
	Expression
	CaseExpression
	WhenClause
	ElseClause
	FunctionName
	FunctionContents
	FunctionCall
	Literal
	NullLiteral
	BooleanLiteral
	ComparisonOperator
	BinaryOperator
	Bracketed
	ColumnReferenceList
	ExpressionList
	Delimited

	// --- CQL-specific node kinds ---

	UseStatement
	CreateKeyspaceStatement
	AlterKeyspaceStatement
	DropKeyspaceStatement
	BatchStatement
	GrantStatement
	RevokeStatement
	UsingClause
	AllowFilteringClause
	PrimaryKeyClause
	ReplicationMapLiteral
	KeyspaceReference
)

var names = map[SyntaxKind]string{
	Unknown:               "unknown",
	Word:                  "word",
	Keyword:               "keyword",
	NakedIdentifier:       "naked_identifier",
	QuotedIdentifier:      "quoted_identifier",
	NumericLiteral:        "numeric_literal",
	StringLiteral:         "string_literal",
	CodeBlock:             "code_block",
	Symbol:                "symbol",
	Operator:              "operator",
	StartBracket:          "start_bracket",
	EndBracket:            "end_bracket",
	StartSquareBracket:    "start_square_bracket",
	EndSquareBracket:      "end_square_bracket",
	StartCurlyBracket:     "start_curly_bracket",
	EndCurlyBracket:       "end_curly_bracket",
	Comma:                 "comma",
	Dot:                   "dot",
	Colon:                 "colon",
	Semicolon:             "semicolon",
	Star:                  "star",
	Placeholder:           "placeholder",
	Newline:               "newline",
	Whitespace:            "whitespace",
	InlineComment:         "inline_comment",
	BlockComment:          "block_comment",
	EndOfFile:             "end_of_file",
	Unlexable:             "unlexable",
	Indent:                "indent",
	Dedent:                "dedent",
	Implicit:              "implicit",
	File:                  "file",
	Unparsable:            "unparsable",
	Statement:             "statement",
	SelectStatement:       "select_statement",
	InsertStatement:       "insert_statement",
	UpdateStatement:       "update_statement",
	DeleteStatement:       "delete_statement",
	CreateTableStatement:  "create_table_statement",
	AlterTableStatement:   "alter_table_statement",
	DropTableStatement:    "drop_table_statement",
	CreateViewStatement:   "create_view_statement",
	CreateIndexStatement:  "create_index_statement",
	DropIndexStatement:    "drop_index_statement",
	WithCompoundStatement: "with_compound_statement",
	SelectClause:          "select_clause",
	SelectTargetElement:   "select_target_element",
	FromClause:            "from_clause",
	FromExpression:        "from_expression",
	JoinClause:            "join_clause",
	JoinOnCondition:       "join_on_condition",
	WhereClause:           "where_clause",
	GroupByClause:         "group_by_clause",
	HavingClause:          "having_clause",
	OrderByClause:         "order_by_clause",
	OrderByElement:        "order_by_element",
	LimitClause:           "limit_clause",
	ColumnReference:       "column_reference",
	TableReference:        "table_reference",
	ColumnDefinition:      "column_definition",
	ColumnConstraint:      "column_constraint",
	TableConstraint:       "table_constraint",
	DatatypeIdentifier:    "datatype_identifier",
	Expression:            "expression",
	CaseExpression:        "case_expression",
	WhenClause:            "when_clause",
	ElseClause:            "else_clause",
	FunctionName:          "function_name",
	FunctionContents:      "function_contents",
	FunctionCall:          "function_call",
	Literal:               "literal",
	NullLiteral:           "null_literal",
	BooleanLiteral:        "boolean_literal",
	ComparisonOperator:    "comparison_operator",
	BinaryOperator:        "binary_operator",
	Bracketed:             "bracketed",
	ColumnReferenceList:   "column_reference_list",
	ExpressionList:        "expression_list",
	Delimited:             "delimited",

	UseStatement:            "use_statement",
	CreateKeyspaceStatement: "create_keyspace_statement",
	AlterKeyspaceStatement:  "alter_keyspace_statement",
	DropKeyspaceStatement:   "drop_keyspace_statement",
	BatchStatement:          "batch_statement",
	GrantStatement:          "grant_statement",
	RevokeStatement:         "revoke_statement",
	UsingClause:             "using_clause",
	AllowFilteringClause:    "allow_filtering_clause",
	PrimaryKeyClause:        "primary_key_clause",
	ReplicationMapLiteral:   "replication_map_literal",
	KeyspaceReference:       "keyspace_reference",
}

func (k SyntaxKind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}

var byName map[string]SyntaxKind

func init() {
	byName = make(map[string]SyntaxKind, len(names))
	for k, name := range names {
		byName[name] = k
	}
}

// KindByName looks up a SyntaxKind by its String() form, for use by
// dialect configuration loaders that reference kinds by name in YAML.
func KindByName(name string) (SyntaxKind, bool) {
	k, ok := byName[name]
	return k, ok
}

// IsMeta reports whether k is a zero-width layout kind inserted by grammars.
func (k SyntaxKind) IsMeta() bool {
	return k == Indent || k == Dedent || k == Implicit
}

// IsCode reports whether a leaf of this kind counts as code for the
// purposes of NonCodeMatcher and is_code() classification.
func (k SyntaxKind) IsCode() bool {
	switch k {
	case Whitespace, Newline, InlineComment, BlockComment, Indent, Dedent, Implicit, EndOfFile:
		return false
	default:
		return true
	}
}

// KindSet is a small set of SyntaxKind values, used for first-set pruning
// and for children()/recursive_crawl() filters.
type KindSet map[SyntaxKind]struct{}

// NewKindSet builds a KindSet from a list of kinds.
func NewKindSet(kinds ...SyntaxKind) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Has reports whether k is a member of the set.
func (s KindSet) Has(k SyntaxKind) bool {
	_, ok := s[k]
	return ok
}
