package completion

import "strings"

// ItemKind is the presentation category of a completion item.
type ItemKind int

const (
	ItemText ItemKind = iota
	ItemFunction
	ItemVariable
	ItemClass
	ItemSnippet
)

func (k ItemKind) String() string {
	switch k {
	case ItemFunction:
		return "function"
	case ItemVariable:
		return "variable"
	case ItemClass:
		return "class"
	case ItemSnippet:
		return "snippet"
	default:
		return "text"
	}
}

type Item struct {
	Label         string
	Kind          ItemKind
	InsertText    string
	Detail        string
	Documentation string
	// Snippet is set when InsertText uses ${n:placeholder} syntax.
	Snippet bool
}

func lines(s ...string) string { return strings.Join(s, "\n") }

var snippets = []Item{
	{
		Label:         "実行",
		InsertText:    lines("関数:実行() => () {", "\t", "}"),
		Documentation: lines("メイン実行関数", "", "無：実行() = {", "\t", "}"),
	},
	{
		Label:         "もし",
		InsertText:    lines("もし( ${1:条件} )ならば{", "\t$0", "}"),
		Documentation: lines("条件分岐処理", "", "もし ( 条件 ) {", "\t", "}"),
	},
	{
		Label:         "からまで",
		InsertText:    lines("(整数：${1:カウンタ} = 0;) から (${1:カウンタ} == ${2:回数}) まで (${1:カウンタ}++;) {", "\t$0", "}"),
		Documentation: lines("繰り返し処理", "", "(整数：カウンタ = 0;) から (カウンタ == 回数) まで (カウンタ++;) {", "\t", "}"),
	},
	{
		Label:         "関数",
		InsertText:    lines("関数:${1:関数名} (${2:引数}) => (${3:戻り値}) {", "\t$0", "}"),
		Documentation: lines("関数の宣言", "", "関数:関数名 (引数) => (戻り値) {", "\t", "}"),
	},
	{
		Label:         "クラス",
		InsertText:    lines("クラス:${1:クラス名} {", "\t関数:${1:クラス名} () => () {", "\t\t$0", "\t}", "\t公開:", "\t非公開:", "}"),
		Documentation: lines("クラス定義", "", "クラス:クラス名 {", "\t関数:クラス名 () => () {", "\t\t", "\t}", "\t公開:", "\t非公開:", "}"),
	},
}

// Snippets returns the fixed templates offered ahead of resolved symbols.
func Snippets() []Item {
	out := make([]Item, len(snippets))
	for i, s := range snippets {
		s.Kind = ItemSnippet
		s.Snippet = true
		s.Detail = strings.SplitN(s.Documentation, "\n", 2)[0]
		out[i] = s
	}
	return out
}
