package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"care-label-reader/internal/domain/entity"
	"care-label-reader/internal/domain/port"
)

// ErrBusy у пользователя уже распознаётся другая этикетка
var ErrBusy = errors.New("label reading is already in progress")

// LabelService сервис распознавания этикеток
type LabelService struct {
	users     *UserService
	reader    port.LabelReader
	describer port.ReadingDescriber
	inflight  map[int64]struct{}
	mu        sync.Mutex
}

// LabelOutput результат распознавания с описанием и картинкой разметки
type LabelOutput struct {
	Reading     *entity.LabelReading
	Description *entity.ReadingDescription
	Annotated   []byte
}

// NewLabelService создаёт сервис распознавания этикеток.
func NewLabelService(users *UserService, reader port.LabelReader, describer port.ReadingDescriber) *LabelService {
	return &LabelService{
		users:     users,
		reader:    reader,
		describer: describer,
		inflight:  make(map[int64]struct{}),
	}
}

// Read получает кадр из источника и распознаёт этикетку без учёта пользователя.
func (s *LabelService) Read(ctx context.Context, src port.FrameSource) (*LabelOutput, error) {
	if s.reader == nil {
		return nil, errors.New("label reader is not configured")
	}

	frame, err := src.Frame(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire frame: %w", err)
	}

	reading, err := s.reader.Read(ctx, frame)
	if err != nil {
		return nil, err
	}

	out := &LabelOutput{Reading: reading}
	if len(reading.Symbols) > 0 {
		annotated, err := s.reader.Annotate(reading)
		if err != nil {
			log.Printf("annotate label: %v", err)
		}
		out.Annotated = annotated
	}

	if s.describer != nil {
		out.Description, err = s.describer.Describe(ctx, reading)
		if err != nil {
			return nil, fmt.Errorf("describe reading: %w", err)
		}
	}
	return out, nil
}

// ReadForUser распознаёт фото от пользователя бота. Пока идёт обработка,
// пользователь в состоянии processing, после успеха коды запоминаются
// и пользователь возвращается в меню. При ошибке бот снова ждёт фото.
func (s *LabelService) ReadForUser(ctx context.Context, userID, chatID int64, src port.FrameSource) (*LabelOutput, error) {
	if !s.acquire(userID) {
		return nil, ErrBusy
	}
	defer s.release(userID)

	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateProcessing); err != nil {
		return nil, err
	}

	out, err := s.Read(ctx, src)
	if err != nil {
		if stateErr := s.users.ResetState(ctx, userID, entity.StateAwaitingLabelPhoto); stateErr != nil {
			log.Printf("reset user %d state: %v", userID, stateErr)
		}
		return nil, err
	}

	if _, err := s.users.Finish(ctx, userID, chatID, out.Reading.Codes()); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LabelService) acquire(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inflight[userID]; ok {
		return false
	}
	s.inflight[userID] = struct{}{}
	return true
}

func (s *LabelService) release(userID int64) {
	s.mu.Lock()
	delete(s.inflight, userID)
	s.mu.Unlock()
}
