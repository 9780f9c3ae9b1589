package schema

// Custom string types for type safety.
type (
	// OutputFormat represents the format of exported commit data.
	OutputFormat string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All export formats supported.
const (
	MarkdownFormat OutputFormat = "markdown" // default
	JSONFormat     OutputFormat = "json"
	CSVFormat      OutputFormat = "csv"
	ParquetFormat  OutputFormat = "parquet"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputFormats lists all valid export formats.
var ValidOutputFormats = map[OutputFormat]struct{}{
	MarkdownFormat: {},
	JSONFormat:     {},
	CSVFormat:      {},
	ParquetFormat:  {},
}

// ValidDatabaseBackends lists all valid cache backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// CommitType classifies a commit by its conventional-commit prefix.
// The zero value is TypeFeat; TypeUnknown is the catch-all for commits
// whose subject does not match the conventional grammar.
type CommitType int

// All commit types supported, in declaration order. TypeUnknown must stay
// last so that grouping arrays can be sized with NumCommitTypes.
const (
	TypeFeat CommitType = iota
	TypeFix
	TypeDocs
	TypeStyle
	TypeRefactor
	TypePerf
	TypeTest
	TypeBuild
	TypeCI
	TypeChore
	TypeRevert
	TypeUnknown

	// NumCommitTypes is the number of commit type variants.
	NumCommitTypes = iota
)

// commitTypeTokens maps each variant to the token used in message prefixes.
// TypeUnknown has no token; it never appears in a valid prefix.
var commitTypeTokens = [NumCommitTypes]string{
	TypeFeat:     "feat",
	TypeFix:      "fix",
	TypeDocs:     "docs",
	TypeStyle:    "style",
	TypeRefactor: "refactor",
	TypePerf:     "perf",
	TypeTest:     "test",
	TypeBuild:    "build",
	TypeCI:       "ci",
	TypeChore:    "chore",
	TypeRevert:   "revert",
	TypeUnknown:  "",
}

// commitTypeTitles maps each variant to its section heading in the report.
var commitTypeTitles = [NumCommitTypes]string{
	TypeFeat:     "🚀 Features",
	TypeFix:      "🐞 Bug Fixes",
	TypeDocs:     "📚 Documentation",
	TypeStyle:    "🎨 Styles",
	TypeRefactor: "🛠 Refactors",
	TypePerf:     "⚡ Performance",
	TypeTest:     "🧪 Tests",
	TypeBuild:    "📦 Build",
	TypeCI:       "🤖 CI",
	TypeChore:    "🧹 Chores",
	TypeRevert:   "⏪ Reverts",
	TypeUnknown:  "❓ Other Changes",
}

// SectionOrder is the fixed order in which non-empty sections are emitted.
// It is a priority list, independent of which types occur in the input.
var SectionOrder = [NumCommitTypes]CommitType{
	TypeFeat,
	TypeFix,
	TypePerf,
	TypeRefactor,
	TypeDocs,
	TypeStyle,
	TypeTest,
	TypeBuild,
	TypeCI,
	TypeChore,
	TypeRevert,
	TypeUnknown,
}

// Token returns the string token that matches this type in commit prefixes.
func (t CommitType) Token() string {
	if t < 0 || t >= NumCommitTypes {
		return ""
	}
	return commitTypeTokens[t]
}

// Title returns the display title used as the section heading for this type.
func (t CommitType) Title() string {
	if t < 0 || t >= NumCommitTypes {
		return commitTypeTitles[TypeUnknown]
	}
	return commitTypeTitles[t]
}

// String implements fmt.Stringer using the prefix token, with "unknown"
// standing in for the catch-all variant.
func (t CommitType) String() string {
	if t == TypeUnknown || t < 0 || t >= NumCommitTypes {
		return "unknown"
	}
	return commitTypeTokens[t]
}

// ParseCommitType maps a prefix token to its CommitType. The match is
// case-sensitive and exact; anything else maps to TypeUnknown.
func ParseCommitType(token string) CommitType {
	for t := TypeFeat; t < TypeUnknown; t++ {
		if commitTypeTokens[t] == token {
			return t
		}
	}
	return TypeUnknown
}
