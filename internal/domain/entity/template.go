package entity

import (
	"fmt"
	"image"
)

// NegativeSuffix суффикс перечёркнутого варианта базового символа
const NegativeSuffix = "_not"

// BaseSymbols базовые символы в порядке объявления
var BaseSymbols = []string{"bleach", "pro", "iron", "wash", "dry"}

// InnerMarks внутренние метки в порядке объявления
var InnerMarks = []string{
	"1_dot", "2_dot", "3_dot", "4_dot", "5_dot", "6_dot",
	"30", "40", "50", "60", "95",
	"A", "F", "P", "W",
}

// BaseTemplateNames возвращает имена базовых шаблонов: каждый символ и сразу за ним его _not.
func BaseTemplateNames() []string {
	names := make([]string, 0, 2*len(BaseSymbols))
	for _, s := range BaseSymbols {
		names = append(names, s, s+NegativeSuffix)
	}
	return names
}

// InnerTemplateNames возвращает имена шаблонов внутренних меток
func InnerTemplateNames() []string {
	return append([]string(nil), InnerMarks...)
}

// Template именованная бинарная маска (символ = 255, фон = 0)
type Template struct {
	Name string
	Mask *image.Gray
}

// TemplateSet упорядоченный набор шаблонов. Порядок обхода совпадает с порядком
// добавления: при равных оценках побеждает шаблон, объявленный раньше.
type TemplateSet struct {
	entries []Template
	index   map[string]int
}

// NewTemplateSet создаёт пустой набор
func NewTemplateSet() *TemplateSet {
	return &TemplateSet{index: make(map[string]int)}
}

// Add добавляет шаблон в конец набора
func (s *TemplateSet) Add(name string, mask *image.Gray) error {
	if name == "" {
		return fmt.Errorf("template name is empty")
	}
	if mask == nil || mask.Bounds().Empty() {
		return fmt.Errorf("template %q: empty mask", name)
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("template %q: duplicate name", name)
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Template{Name: name, Mask: mask})
	return nil
}

// Len количество шаблонов
func (s *TemplateSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Names имена в порядке объявления
func (s *TemplateSet) Names() []string {
	names := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		names = append(names, e.Name)
	}
	return names
}

// Entries копия списка шаблонов в порядке объявления
func (s *TemplateSet) Entries() []Template {
	if s == nil {
		return nil
	}
	return append([]Template(nil), s.entries...)
}

// Get ищет маску по имени
func (s *TemplateSet) Get(name string) (*image.Gray, bool) {
	if s == nil {
		return nil, false
	}
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Mask, true
}
