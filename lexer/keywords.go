package lexer

import (
	"github.com/chunkfmt/chunkfmt/langflags"
	"github.com/chunkfmt/chunkfmt/token"
)

// keyword mirrors punct's shape but for identifier-spelled keywords,
// grounded in original_source/src/keywords.c's per-language keyword table.
type keyword struct {
	kind token.Kind
	lang langflags.Mask
}

// keywordTable maps every recognized spelling to its Kind and the
// languages under which that spelling is a keyword (as opposed to a
// plain, uncolored identifier in a language that doesn't reserve it).
var keywordTable = map[string]keyword{
	"if":        {token.KindKeywordIf, allLangs},
	"else":      {token.KindKeywordElse, allLangs},
	"for":       {token.KindKeywordFor, allLangs},
	"while":     {token.KindKeywordWhile, allLangs},
	"do":        {token.KindKeywordDo, allLangs},
	"switch":    {token.KindKeywordSwitch, allLangs},
	"case":      {token.KindKeywordCase, allLangs},
	"default":   {token.KindKeywordDefault, allLangs},
	"return":    {token.KindKeywordReturn, allLangs},
	"break":     {token.KindKeywordBreak, allLangs},
	"continue":  {token.KindKeywordContinue, allLangs},
	"goto":      {token.KindKeywordGoto, langflags.LangC | langflags.LangCPP | langflags.LangCS | langflags.LangD | langflags.LangPawn},
	"class":     {token.KindKeywordClass, langflags.LangCPP | langflags.LangOC | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangVala | langflags.LangECMA},
	"struct":    {token.KindKeywordStruct, langflags.LangC | langflags.LangCPP | langflags.LangCS | langflags.LangD},
	"union":     {token.KindKeywordUnion, langflags.LangC | langflags.LangCPP | langflags.LangD},
	"enum":      {token.KindKeywordEnum, allLangs &^ langflags.LangECMA},
	"namespace": {token.KindKeywordNamespace, langflags.LangCPP | langflags.LangCS | langflags.LangVala},
	"template":  {token.KindKeywordTemplate, langflags.LangCPP | langflags.LangD | langflags.LangVala},
	"typedef":   {token.KindKeywordTypedef, langflags.LangC | langflags.LangCPP | langflags.LangD},
	"using":     {token.KindKeywordUsing, langflags.LangCPP | langflags.LangCS},
	"try":       {token.KindKeywordTry, langflags.LangCPP | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangECMA | langflags.LangVala},
	"catch":     {token.KindKeywordCatch, langflags.LangCPP | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangECMA | langflags.LangVala},
	"throw":     {token.KindKeywordThrow, langflags.LangCPP | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangECMA},
	"new":       {token.KindKeywordNew, langflags.LangCPP | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangECMA | langflags.LangVala},
	"delete":    {token.KindKeywordDelete, langflags.LangCPP | langflags.LangD},
	"sizeof":    {token.KindKeywordSizeof, langflags.LangC | langflags.LangCPP | langflags.LangD | langflags.LangPawn},
	"decltype":  {token.KindKeywordDecltype, langflags.LangCPP},
	"operator":  {token.KindKeywordOperator, langflags.LangCPP | langflags.LangCS},
	"public":    {token.KindKeywordPublic, langflags.LangCPP | langflags.LangOC | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangVala},
	"private":   {token.KindKeywordPrivate, langflags.LangCPP | langflags.LangOC | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangVala},
	"protected": {token.KindKeywordProtected, langflags.LangCPP | langflags.LangOC | langflags.LangCS | langflags.LangJava | langflags.LangD | langflags.LangVala},
	"static":    {token.KindKeywordStatic, allLangs &^ langflags.LangECMA},
	"const":     {token.KindKeywordConst, allLangs},
	"virtual":   {token.KindKeywordVirtual, langflags.LangCPP | langflags.LangCS | langflags.LangD},
	"override":  {token.KindKeywordOverride, langflags.LangCPP | langflags.LangCS},
	"final":     {token.KindKeywordFinal, langflags.LangCPP | langflags.LangJava | langflags.LangCS},
	"asm":       {token.KindKeywordAsm, langflags.LangC | langflags.LangCPP | langflags.LangD},

	// bare type keywords: tagged KindType so the Combiner's star/amp
	// disambiguation sees them as a type immediately, without needing a
	// symbol table.
	"void": {token.KindType, allLangs &^ langflags.LangECMA},
	"int":  {token.KindType, allLangs &^ langflags.LangECMA},
	"char": {token.KindType, allLangs &^ langflags.LangECMA},
	"long": {token.KindType, langflags.LangC | langflags.LangCPP | langflags.LangCS | langflags.LangD | langflags.LangJava},
	"short": {token.KindType, langflags.LangC | langflags.LangCPP | langflags.LangCS | langflags.LangD | langflags.LangJava},
	"float":  {token.KindType, allLangs &^ langflags.LangECMA},
	"double": {token.KindType, langflags.LangC | langflags.LangCPP | langflags.LangCS | langflags.LangD | langflags.LangJava},
	"bool":   {token.KindType, langflags.LangCPP | langflags.LangCS | langflags.LangD | langflags.LangVala},
	"boolean": {token.KindType, langflags.LangJava},
	"var":     {token.KindType, langflags.LangCS | langflags.LangECMA},
	"auto":    {token.KindType, langflags.LangCPP | langflags.LangD | langflags.LangC},
	"string":  {token.KindType, langflags.LangCS | langflags.LangVala},

	// qualifiers
	"volatile": {token.KindQualifier, allLangs &^ langflags.LangECMA},
	"mutable":  {token.KindQualifier, langflags.LangCPP},
	"inline":   {token.KindQualifier, langflags.LangC | langflags.LangCPP | langflags.LangD},
	"extern":   {token.KindQualifier, langflags.LangC | langflags.LangCPP},
	"restrict": {token.KindQualifier, langflags.LangC},
}

// lookupKeyword resolves ident under lang, returning (kind, true) if ident
// is a keyword in that language, or (token.KindIdent, false) otherwise —
// meaning the tokenizer should emit a plain identifier.
func lookupKeyword(ident string, lang langflags.Mask) (token.Kind, bool) {
	kw, ok := keywordTable[ident]
	if !ok || !kw.lang.Any(lang) {
		return token.KindIdent, false
	}
	return kw.kind, true
}
