package entity

import "strings"

// FragmentSeparator разделитель фрагментов инструкции
const FragmentSeparator = "; "

// Квалификаторы внешних линий под символом
const (
	QualifierDelicate     = "delicate"
	QualifierVeryDelicate = "very_delicate"
)

// DetailSymbols базовые символы, у которых бывают внутренние и внешние метки.
// У bleach меток нет, перечёркнутые варианты их не расшифровывают.
var DetailSymbols = []string{"wash", "iron", "dry", "pro"}

var instructionNames = map[string]string{
	"bleach": "bleach",
	"pro":    "dry_clean",
	"iron":   "iron",
	"wash":   "wash",
	"dry":    "tumble_dry",
}

type innerKey struct {
	base  string
	inner string
}

var innerTable = map[innerKey]string{
	{"wash", "1_dot"}: "30",
	{"wash", "2_dot"}: "40",
	{"wash", "3_dot"}: "50",
	{"wash", "4_dot"}: "60",
	{"wash", "5_dot"}: "70",
	{"wash", "6_dot"}: "95",
	{"wash", "30"}:    "30",
	{"wash", "40"}:    "40",
	{"wash", "50"}:    "50",
	{"wash", "60"}:    "60",
	{"wash", "95"}:    "95",

	{"iron", "1_dot"}: "low_temp",
	{"iron", "2_dot"}: "medium_temp",
	{"iron", "3_dot"}: "high_temp",

	{"dry", "1_dot"}: "low_temp",
	{"dry", "2_dot"}: "medium_temp",
	{"dry", "3_dot"}: "high_temp",

	{"pro", "A"}: "any_solvent",
	{"pro", "F"}: "petroleum_only",
	{"pro", "P"}: "any_solvent_except_TCE",
	{"pro", "W"}: "wet_clean",
}

// HasDetail сообщает, нужно ли искать метки для базового кода
func HasDetail(base string) bool {
	for _, s := range DetailSymbols {
		if s == base {
			return true
		}
	}
	return false
}

// InstructionName переводит имя шаблона в имя инструкции: pro → dry_clean,
// wash_not → do_not_wash. Неизвестные коды возвращаются как есть.
func InstructionName(base string) string {
	if name, ok := instructionNames[base]; ok {
		return name
	}
	if symbol, ok := strings.CutSuffix(base, NegativeSuffix); ok {
		if name, ok := instructionNames[symbol]; ok {
			return "do_not_" + name
		}
	}
	return base
}

// DecodeInner ищет фрагмент инструкции для пары (базовый код, внутренняя метка)
func DecodeInner(base, inner string) (string, bool) {
	fragment, ok := innerTable[innerKey{base: base, inner: inner}]
	return fragment, ok
}

// OuterQualifier переводит количество внешних контуров в квалификатор
func OuterQualifier(contours int) (string, bool) {
	switch contours {
	case 1:
		return QualifierDelicate, true
	case 2:
		return QualifierVeryDelicate, true
	default:
		return "", false
	}
}

// DecodedInstruction упорядоченные фрагменты инструкции
type DecodedInstruction []string

// String склеивает фрагменты через "; "
func (d DecodedInstruction) String() string {
	return strings.Join(d, FragmentSeparator)
}

// Detail результат поиска меток внутри и вокруг символа
type Detail struct {
	Inner         *MatchResult // nil, если внутри символа нет меток
	OuterContours int          // количество контуров вне силуэта
}

// Decode собирает инструкцию из базового кода и найденных меток
func Decode(base string, detail *Detail) DecodedInstruction {
	instr := DecodedInstruction{InstructionName(base)}
	if detail == nil || !HasDetail(base) {
		return instr
	}

	if detail.Inner != nil {
		if !detail.Inner.Matched() {
			instr = append(instr, ErrorSentinel)
		} else if fragment, ok := DecodeInner(base, detail.Inner.Code); ok {
			instr = append(instr, fragment)
		}
	}
	if q, ok := OuterQualifier(detail.OuterContours); ok {
		instr = append(instr, q)
	}
	return instr
}
