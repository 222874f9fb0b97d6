// Package opstack models a LIFO stack of named operations with a bounded
// journal of everything done to it.
package opstack

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nikmy/labforms/pkg/errors"
)

const (
	logLimit   = 50
	timeLayout = time.TimeOnly
)

type Status string

const (
	StatusInfo    Status = "info"
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

type Entry struct {
	Time    string `json:"time"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Status  Status `json:"status"`
}

type Stats struct {
	TotalOperations int
	Size            int
	Empty           bool
	Top             string
	HasTop          bool
}

var Samples = []string{
	"Сложение чисел",
	"Умножение матриц",
	"Проверка условий",
	"Чтение файла",
	"Запись в базу данных",
	"Отправка email",
	"Валидация данных",
	"Генерация отчета",
}

type Stack struct {
	items []string
	log   []Entry
	now   func() time.Time
}

func New(now func() time.Time) *Stack {
	if now == nil {
		now = time.Now
	}

	s := &Stack{now: now}
	s.record("Инициализация", "Стек операций создан", StatusInfo)
	return s
}

func (s *Stack) Push(op string) {
	s.items = append(s.items, op)
	s.record("PUSH", fmt.Sprintf("Добавлена операция: '%s'", op), StatusInfo)
}

func (s *Stack) Pop() (string, bool) {
	if len(s.items) == 0 {
		s.record("POP", "Попытка извлечения из пустого стека", StatusWarning)
		return "", false
	}

	last := len(s.items) - 1
	op := s.items[last]
	s.items = s.items[:last]

	s.record("POP", fmt.Sprintf("Извлечена операция: '%s'", op), StatusSuccess)
	return op, true
}

func (s *Stack) Peek() (string, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack) Count() int {
	return len(s.items)
}

// All returns the operations from bottom to top.
func (s *Stack) All() []string {
	return append([]string(nil), s.items...)
}

// TopDown returns the operations from top to bottom.
func (s *Stack) TopDown() []string {
	out := make([]string, len(s.items))
	for i, op := range s.items {
		out[len(s.items)-1-i] = op
	}
	return out
}

func (s *Stack) Clear() {
	before := len(s.items)
	s.items = nil
	s.record("CLEAR", fmt.Sprintf("Стек очищен (удалено %d операций)", before), StatusDanger)
}

// Log returns journal entries, oldest first.
func (s *Stack) Log() []Entry {
	return append([]Entry(nil), s.log...)
}

func (s *Stack) Stats() Stats {
	top, ok := s.Peek()
	return Stats{
		TotalOperations: len(s.log),
		Size:            len(s.items),
		Empty:           s.IsEmpty(),
		Top:             top,
		HasTop:          ok,
	}
}

func (s *Stack) record(typ, msg string, status Status) {
	s.log = append(s.log, Entry{
		Time:    s.now().Format(timeLayout),
		Type:    typ,
		Message: msg,
		Status:  status,
	})

	if over := len(s.log) - logLimit; over > 0 {
		s.log = append([]Entry(nil), s.log[over:]...)
	}
}

type snapshot struct {
	Items []string `json:"items"`
	Log   []Entry  `json:"log"`
}

func (s *Stack) Snapshot() ([]byte, error) {
	data, err := json.Marshal(snapshot{Items: s.items, Log: s.log})
	return data, errors.WrapFail(err, "marshal operation stack")
}

// Restore rebuilds a stack saved with Snapshot.
func Restore(data []byte, now func() time.Time) (*Stack, error) {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, errors.WrapFail(err, "unmarshal operation stack")
	}

	if now == nil {
		now = time.Now
	}

	s := &Stack{items: snap.Items, log: snap.Log, now: now}
	if len(s.log) > logLimit {
		s.log = s.log[len(s.log)-logLimit:]
	}
	return s, nil
}
