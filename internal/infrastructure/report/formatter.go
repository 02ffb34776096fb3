package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/domain/port"
)

// Formatter превращает результат распознавания в текст и JSON
type Formatter struct{}

// NewFormatter создаёт форматтер
func NewFormatter() *Formatter {
	return &Formatter{}
}

var fragmentTitles = map[string]string{
	"wash":              "стирка",
	"do_not_wash":       "не стирать",
	"bleach":            "отбеливание разрешено",
	"do_not_bleach":     "не отбеливать",
	"iron":              "глажка",
	"do_not_iron":       "не гладить",
	"tumble_dry":        "сушка в барабане",
	"do_not_tumble_dry": "не сушить в барабане",
	"dry_clean":         "химчистка",
	"do_not_dry_clean":  "химчистка запрещена",

	"low_temp":               "низкая температура",
	"medium_temp":            "средняя температура",
	"high_temp":              "высокая температура",
	"any_solvent":            "любые растворители",
	"petroleum_only":         "только углеводороды",
	"any_solvent_except_TCE": "любые растворители кроме трихлорэтилена",
	"wet_clean":              "аквачистка",

	entity.QualifierDelicate:     "деликатный режим",
	entity.QualifierVeryDelicate: "очень деликатный режим",
	entity.ErrorSentinel:         "не распознано",
}

// Title переводит фрагменты инструкции в русский текст
func Title(instr entity.DecodedInstruction) string {
	parts := make([]string, 0, len(instr))
	for _, f := range instr {
		switch {
		case fragmentTitles[f] != "":
			parts = append(parts, fragmentTitles[f])
		case isDigits(f):
			parts = append(parts, f+"°C")
		default:
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, ", ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Describe строит текстовое описание: строка на символ и средняя уверенность.
func (f *Formatter) Describe(ctx context.Context, reading *entity.LabelReading) (*entity.ReadingDescription, error) {
	_ = ctx
	if reading == nil {
		return nil, errors.New("reading is nil")
	}
	if len(reading.Symbols) == 0 {
		return &entity.ReadingDescription{Text: "Символы на этикетке не найдены."}, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Найдено символов: %d, распознано: %d\n", len(reading.Symbols), reading.Recognized())

	scores := make([]float64, 0, len(reading.Symbols))
	for i, s := range reading.Symbols {
		scores = append(scores, s.Base.Score)
		fmt.Fprintf(&b, "%d. %s", i+1, Title(s.Instruction))
		if s.ID != entity.UnknownInstruction {
			fmt.Fprintf(&b, " [%s, ID %d]", s.Code, s.ID)
		} else {
			fmt.Fprintf(&b, " [%s]", s.Code)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Средняя уверенность: %.2f", stat.Mean(scores, nil))

	return &entity.ReadingDescription{Text: b.String()}, nil
}

// SymbolDocument символ в JSON-отчёте
type SymbolDocument struct {
	Index         int      `json:"index"`
	Code          string   `json:"code"`
	ID            int      `json:"id"`
	Base          string   `json:"base"`
	BaseScore     float64  `json:"base_score"`
	Inner         string   `json:"inner,omitempty"`
	InnerScore    *float64 `json:"inner_score,omitempty"`
	OuterContours int      `json:"outer_contours"`
	Box           [4]int   `json:"box"`
}

// Document JSON-отчёт по этикетке
type Document struct {
	Codes   []string         `json:"codes"`
	IDs     []int            `json:"ids"`
	Label   LabelDocument    `json:"label"`
	Symbols []SymbolDocument `json:"symbols"`
}

// LabelDocument положение этикетки на кадре
type LabelDocument struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Angle   float64 `json:"angle"`
}

// NewDocument собирает JSON-отчёт
func NewDocument(reading *entity.LabelReading) Document {
	doc := Document{
		Codes: reading.Codes(),
		IDs:   reading.IDs(),
		Label: LabelDocument{
			CenterX: reading.Region.Center.X,
			CenterY: reading.Region.Center.Y,
			Width:   reading.Region.Size.W,
			Height:  reading.Region.Size.H,
			Angle:   reading.Region.Angle,
		},
		Symbols: make([]SymbolDocument, 0, len(reading.Symbols)),
	}
	for i, s := range reading.Symbols {
		r := s.Region.Bounds()
		sd := SymbolDocument{
			Index:     i,
			Code:      s.Code,
			ID:        s.ID,
			Base:      s.Base.Code,
			BaseScore: s.Base.Score,
			Box:       [4]int{r.Min.X, r.Min.Y, r.Dx(), r.Dy()},
		}
		if s.Detail != nil {
			sd.OuterContours = s.Detail.OuterContours
			if s.Detail.Inner != nil {
				score := s.Detail.Inner.Score
				sd.Inner = s.Detail.Inner.Code
				sd.InnerScore = &score
			}
		}
		doc.Symbols = append(doc.Symbols, sd)
	}
	return doc
}

// JSON сериализует отчёт с отступами
func (f *Formatter) JSON(reading *entity.LabelReading) ([]byte, error) {
	if reading == nil {
		return nil, errors.New("reading is nil")
	}
	return json.MarshalIndent(NewDocument(reading), "", "  ")
}

// Проверка реализации интерфейса
var _ port.ReadingDescriber = (*Formatter)(nil)
