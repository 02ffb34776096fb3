package entity

// UnknownInstruction ID инструкции, которой нет в таблице
const UnknownInstruction = -1

// instructionCodes закрытая таблица инструкций. Индекс в срезе и есть ID,
// поэтому новые записи добавляются только в конец.
var instructionCodes = []string{
	// 0: стирка
	"wash",
	"wash; delicate",
	"wash; very_delicate",
	"wash; 30",
	"wash; 30; delicate",
	"wash; 30; very_delicate",
	"wash; 40",
	"wash; 40; delicate",
	"wash; 40; very_delicate",
	"wash; 50",
	"wash; 50; delicate",
	"wash; 60",
	"wash; 60; delicate",
	"wash; 70",
	"wash; 95",
	"do_not_wash",

	// 16: отбеливание
	"bleach",
	"do_not_bleach",

	// 18: глажка
	"iron",
	"iron; low_temp",
	"iron; medium_temp",
	"iron; high_temp",
	"do_not_iron",

	// 23: сушка в барабане
	"tumble_dry",
	"tumble_dry; delicate",
	"tumble_dry; very_delicate",
	"tumble_dry; low_temp",
	"tumble_dry; low_temp; delicate",
	"tumble_dry; low_temp; very_delicate",
	"tumble_dry; medium_temp",
	"tumble_dry; medium_temp; delicate",
	"tumble_dry; medium_temp; very_delicate",
	"tumble_dry; high_temp",
	"tumble_dry; high_temp; delicate",
	"do_not_tumble_dry",

	// 35: химчистка
	"dry_clean",
	"dry_clean; delicate",
	"dry_clean; very_delicate",
	"dry_clean; any_solvent",
	"dry_clean; any_solvent; delicate",
	"dry_clean; any_solvent; very_delicate",
	"dry_clean; petroleum_only",
	"dry_clean; petroleum_only; delicate",
	"dry_clean; petroleum_only; very_delicate",
	"dry_clean; wet_clean",
	"dry_clean; wet_clean; delicate",
	"dry_clean; wet_clean; very_delicate",
	"dry_clean; any_solvent_except_TCE",
	"dry_clean; any_solvent_except_TCE; delicate",
	"dry_clean; any_solvent_except_TCE; very_delicate",
	"do_not_dry_clean",
}

var instructionIDs = func() map[string]int {
	ids := make(map[string]int, len(instructionCodes))
	for id, code := range instructionCodes {
		ids[code] = id
	}
	return ids
}()

// LookupInstructionID возвращает ID инструкции или UnknownInstruction
func LookupInstructionID(code string) int {
	if id, ok := instructionIDs[code]; ok {
		return id
	}
	return UnknownInstruction
}

// InstructionCodes копия таблицы инструкций в порядке ID
func InstructionCodes() []string {
	return append([]string(nil), instructionCodes...)
}

// CodeAssembler копит коды символов в порядке сегментации
type CodeAssembler struct {
	codes []string
}

// Add добавляет полный код очередного символа
func (a *CodeAssembler) Add(instr DecodedInstruction) string {
	code := instr.String()
	a.codes = append(a.codes, code)
	return code
}

// Codes коды в порядке добавления
func (a *CodeAssembler) Codes() []string {
	return append([]string(nil), a.codes...)
}

// IDs параллельный список ID инструкций
func (a *CodeAssembler) IDs() []int {
	ids := make([]int, len(a.codes))
	for i, c := range a.codes {
		ids[i] = LookupInstructionID(c)
	}
	return ids
}
