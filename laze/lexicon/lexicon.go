// Package lexicon holds the fixed, localized vocabulary of the language.
//
// Authors write the localized surface forms; the English keys only name the
// entries inside this package.
package lexicon

// Control words get their own highlighting category.
const (
	End      = "終了"
	If       = "もし"
	Then     = "ならば"
	Else     = "でなければ"
	From     = "から"
	Until    = "まで"
	Break    = "抜ける"
	Continue = "次へ"
	Repeat   = "回繰り返す"
	Loop     = "無限ループ"
	Include  = "#include"
	Private  = "非公開"
	Public   = "公開"
)

const (
	Void    = "無"
	Boolean = "真偽"
	Int32   = "整数32"
	Int64   = "整数"
	Double  = "実数"
	Char    = "文字"
	String  = "文字列"
)

const (
	True     = "真"
	False    = "偽"
	Function = "関数"
	Class    = "クラス"
)

const (
	LoadJS = "js読み込み"
	Sizeof = "バイト数"
)

// Counter is the loop variable implicitly declared by a repeat loop.
const (
	Counter     = "カウンタ"
	CounterType = Int64
)

var (
	ControlWords = []string{End, If, Then, Else, From, Until, Break, Continue, Repeat, Loop, Include, Private, Public}
	TypeWords    = []string{Void, Boolean, Int32, Int64, Double, Char, String}
	Keywords     = []string{True, False, Function, Class}
	Builtins     = []string{LoadJS, Sizeof}
)

var (
	controlSet = toSet(ControlWords)
	typeSet    = toSet(TypeWords)
	keywordSet = toSet(Keywords)
	builtinSet = toSet(Builtins)
)

func IsControl(word string) bool { return controlSet[word] }
func IsType(word string) bool    { return typeSet[word] }
func IsKeyword(word string) bool { return keywordSet[word] }
func IsBuiltin(word string) bool { return builtinSet[word] }

// IsReserved reports whether word belongs to any closed vocabulary.
func IsReserved(word string) bool {
	return controlSet[word] || typeSet[word] || keywordSet[word] || builtinSet[word]
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
