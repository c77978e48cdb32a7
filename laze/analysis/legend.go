package analysis

// TokenType indexes the semantic token legend. The order is part of the wire
// format and must not change.
type TokenType int

const (
	TypeComment TokenType = iota
	TypeString
	TypeKeyword
	TypeNumber
	TypeRegexp
	TypeOperator
	TypeNamespace
	TypeType
	TypeStruct
	TypeClass
	TypeInterface
	TypeEnum
	TypeTypeParameter
	TypeFunction
	TypeMember
	TypeMacro
	TypeVariable
	TypeParameter
	TypeProperty
	TypeLabel
	TypeControl
	TypeScope0
	TypeScope1
	TypeScope2
	TypeBracket
	TypeChar
	TypeDefault
)

var tokenTypeNames = []string{
	"comment",
	"string",
	"keyword",
	"number",
	"regexp",
	"operator",
	"namespace",
	"type",
	"struct",
	"class",
	"interface",
	"enum",
	"typeParameter",
	"function",
	"member",
	"macro",
	"variable",
	"parameter",
	"property",
	"label",
	"control",
	"scope0",
	"scope1",
	"scope2",
	"bracket",
	"char",
	"default",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// Modifier is a bit set over the modifier legend.
type Modifier uint32

const (
	ModDeclaration Modifier = 1 << iota
	ModDocumentation
	ModReadonly
	ModStatic
	ModAbstract
	ModDeprecated
	ModModification
	ModAsync
	ModDec
	ModHex
	ModBin
	ModStart
	ModEnd
	ModInvalid
)

var modifierNames = []string{
	"declaration",
	"documentation",
	"readonly",
	"static",
	"abstract",
	"deprecated",
	"modification",
	"async",
	"dec",
	"hex",
	"bin",
	"start",
	"end",
	"invalid",
}

func (m Modifier) Has(flag Modifier) bool {
	return m&flag == flag
}

// Names lists the modifiers set in m in legend order.
func (m Modifier) Names() []string {
	var names []string
	for i, name := range modifierNames {
		if m.Has(Modifier(1) << i) {
			names = append(names, name)
		}
	}
	return names
}

// Legend returns the token type and modifier names in wire order.
func Legend() (types []string, modifiers []string) {
	return append([]string(nil), tokenTypeNames...), append([]string(nil), modifierNames...)
}
