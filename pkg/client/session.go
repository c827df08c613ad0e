package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"love_space/internal/domain"
	"love_space/pkg/logger"
)

// ErrRoomNotFound возвращается из Start, когда комнаты нет, а сессия
// не является создателем: для такого клиента комната отсутствует навсегда.
var ErrRoomNotFound = errors.New("room not found")

// Session — состояние одного участника в одной комнате: код, имя, признак
// создателя и индекс текущей темы живут здесь, а не в свободных переменных.
// Сессия опрашивает сервер с фиксированным интервалом и целиком заменяет
// локальный снимок ответом сервера (last-fetch-wins).
type Session struct {
	client   *Client
	log      logger.Logger
	RoomCode string
	Username string
	Creator  bool
	Interval time.Duration

	// OnUpdate вызывается на каждом примененном снимке
	OnUpdate func(*domain.RoomState)

	mu         sync.Mutex
	state      *domain.RoomState
	themeIndex int
	joined     bool
	nextSeq    uint64
	appliedSeq uint64
}

func NewSession(c *Client, code, username string, creator bool, interval time.Duration, log logger.Logger) *Session {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &Session{
		client:   c,
		log:      log,
		RoomCode: code,
		Username: username,
		Creator:  creator,
		Interval: interval,
	}
}

// Start выполняет первичную загрузку комнаты. Если комнаты нет и сессия —
// создатель, комната материализуется последовательностью create-then-read.
func (s *Session) Start(ctx context.Context) error {
	seq := s.takeSeq()

	state, err := s.client.GetRoomState(ctx, s.RoomCode)
	if err != nil {
		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.NotFound() {
			return err
		}
		if !s.Creator {
			return ErrRoomNotFound
		}
		if _, err := s.client.CreateRoom(ctx, s.RoomCode); err != nil {
			return err
		}
		state, err = s.client.GetRoomState(ctx, s.RoomCode)
		if err != nil {
			return err
		}
	}

	s.apply(seq, state)
	return nil
}

// Join регистрирует участника в комнате и включает последующий опрос
func (s *Session) Join(ctx context.Context) error {
	if err := s.client.JoinRoom(ctx, s.RoomCode, s.Username); err != nil {
		return err
	}

	s.mu.Lock()
	s.joined = true
	s.mu.Unlock()

	s.refresh(ctx)
	return nil
}

// Run опрашивает сервер каждые Interval, пока контекст жив. Тики идут по
// настенным часам: медленный запрос может пережить следующий тик, поэтому
// устаревший ответ отбрасывается по номеру последовательности. Отмена
// контекста детерминированно останавливает таймер.
func (s *Session) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.Joined() {
				continue
			}
			go s.refresh(ctx)
		}
	}
}

// SendMessage отправляет сообщение, помеченное градиентом текущей темы,
// и сразу перечитывает состояние, не дожидаясь следующего тика.
// При ошибке текст остается у вызывающего — можно повторить вручную.
func (s *Session) SendMessage(ctx context.Context, text string) error {
	s.mu.Lock()
	color := domain.Themes[s.themeIndex].Primary
	s.mu.Unlock()

	if _, err := s.client.PostMessage(ctx, s.RoomCode, text, s.Username, color); err != nil {
		return err
	}

	s.refresh(ctx)
	return nil
}

// ChangeTheme переключает тему комнаты (последняя запись выигрывает)
func (s *Session) ChangeTheme(ctx context.Context, name string) error {
	if err := s.client.SetTheme(ctx, s.RoomCode, name); err != nil {
		return err
	}

	s.mu.Lock()
	s.themeIndex = domain.ThemeIndex(name)
	s.mu.Unlock()

	s.refresh(ctx)
	return nil
}

// State возвращает последний примененный снимок
func (s *Session) State() *domain.RoomState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Joined() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.joined
}

func (s *Session) ThemeIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.themeIndex
}

func (s *Session) takeSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// refresh выполняет один полный опрос. Ошибка логируется и глотается:
// цикл продолжит со следующего тика, показывая устаревшие данные.
func (s *Session) refresh(ctx context.Context) {
	seq := s.takeSeq()

	state, err := s.client.GetRoomState(ctx, s.RoomCode)
	if err != nil {
		s.log.Warn("Poll failed", "error", err, "code", s.RoomCode)
		return
	}

	s.apply(seq, state)
}

// apply заменяет локальный снимок целиком. Ответ с номером меньше уже
// примененного пришел не по порядку и отбрасывается, чтобы медленный
// старый опрос не затер более свежее состояние.
func (s *Session) apply(seq uint64, state *domain.RoomState) {
	s.mu.Lock()
	if seq < s.appliedSeq {
		s.mu.Unlock()
		s.log.Debug("Discarding stale poll response", "seq", seq, "applied", s.appliedSeq)
		return
	}
	s.appliedSeq = seq
	s.state = state
	s.themeIndex = domain.ThemeIndex(state.Room.Theme)
	onUpdate := s.OnUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(state)
	}
}
