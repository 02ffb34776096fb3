package entity

import "image"

// SymbolReading результат распознавания одного символа на этикетке
type SymbolReading struct {
	Region      RotatedRegion      // квадратная область символа на выпрямленной этикетке
	Base        MatchResult        // совпадение с базовым шаблоном
	Detail      *Detail            // метки, если символ их поддерживает
	Instruction DecodedInstruction // фрагменты инструкции
	Code        string             // полный код, например "wash; 40"
	ID          int                // ID инструкции или UnknownInstruction
}

// LabelReading итог обработки одного кадра
type LabelReading struct {
	Region  RotatedRegion   // положение этикетки на исходном кадре
	Label   image.Image     // выпрямленная этикетка с полями
	Symbols []SymbolReading // символы в порядке сегментации
}

// NewSymbolReading собирает инструкцию символа и ищет её ID
func NewSymbolReading(region RotatedRegion, base MatchResult, detail *Detail) SymbolReading {
	instr := Decode(base.Code, detail)
	code := instr.String()
	return SymbolReading{
		Region:      region,
		Base:        base,
		Detail:      detail,
		Instruction: instr,
		Code:        code,
		ID:          LookupInstructionID(code),
	}
}

// Codes полные коды символов в порядке сегментации
func (r *LabelReading) Codes() []string {
	var asm CodeAssembler
	for _, s := range r.Symbols {
		asm.Add(s.Instruction)
	}
	return asm.Codes()
}

// IDs ID инструкций, параллельно Codes
func (r *LabelReading) IDs() []int {
	var asm CodeAssembler
	for _, s := range r.Symbols {
		asm.Add(s.Instruction)
	}
	return asm.IDs()
}

// Recognized количество символов с принятым базовым шаблоном
func (r *LabelReading) Recognized() int {
	n := 0
	for _, s := range r.Symbols {
		if s.Base.Matched() {
			n++
		}
	}
	return n
}

// ReadingDescription текстовое описание распознанной этикетки
type ReadingDescription struct {
	Text string
}
