// CLI-клиент love space: создает или открывает комнату по коду,
// подключается как участник и синхронизируется опросом.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"love_space/internal/domain"
	"love_space/pkg/client"
	"love_space/pkg/logger"
)

func main() {
	var (
		server   = flag.String("server", "http://localhost:8080", "server base URL")
		room     = flag.String("room", "", "room code (generated if empty and -creator is set)")
		name     = flag.String("name", "", "your display name")
		creator  = flag.Bool("creator", false, "create the room if it does not exist")
		interval = flag.Duration("interval", 3*time.Second, "poll interval")
		logLevel = flag.String("log-level", "warn", "log level")
	)
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: client -name <name> -room <code> [-creator] [-server <url>]")
		os.Exit(1)
	}

	code := *room
	if code == "" {
		if !*creator {
			fmt.Fprintln(os.Stderr, "-room is required unless -creator is set")
			os.Exit(1)
		}
		code = domain.NewRoomCode()
		fmt.Printf("Room code: %s\n", code)
	}

	appLogger := logger.New(*logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	session := client.NewSession(client.New(*server), code, *name, *creator, *interval, appLogger)

	printer := newPrinter()
	session.OnUpdate = printer.Apply

	if err := session.Start(ctx); err != nil {
		if errors.Is(err, client.ErrRoomNotFound) {
			fmt.Fprintf(os.Stderr, "Room %s not found\n", code)
		} else {
			fmt.Fprintf(os.Stderr, "Failed to open room: %v\n", err)
		}
		os.Exit(1)
	}

	if err := session.Join(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to join room: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Joined %s as %s. Type a message, /theme <name> or /quit.\n", code, *name)

	go session.Run(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit":
			cancel()
			return
		case strings.HasPrefix(line, "/theme"):
			themeName := strings.TrimSpace(strings.TrimPrefix(line, "/theme"))
			if themeName == "" {
				// Без аргумента листаем каталог по кругу
				themeName = domain.Themes[(session.ThemeIndex()+1)%len(domain.Themes)].Name
			}
			if err := session.ChangeTheme(ctx, themeName); err != nil {
				fmt.Fprintf(os.Stderr, "Theme not changed: %v\n", err)
			}
		default:
			if err := session.SendMessage(ctx, line); err != nil {
				// Текст не потерян: можно отправить повторно
				fmt.Fprintf(os.Stderr, "Not sent, try again: %v\n", err)
			}
		}

		if ctx.Err() != nil {
			return
		}
	}
}

// printer печатает только новое: сообщения, которых еще не видел,
// смену темы и появление участников
type printer struct {
	mu       sync.Mutex
	seen     int
	theme    string
	userSeen map[string]bool
}

func newPrinter() *printer {
	return &printer{userSeen: make(map[string]bool)}
}

func (p *printer) Apply(state *domain.RoomState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, u := range state.Users {
		if !p.userSeen[u] {
			p.userSeen[u] = true
			fmt.Printf("* %s is here\n", u)
		}
	}

	if p.theme != "" && p.theme != state.Room.Theme {
		fmt.Printf("* theme changed to %s\n", state.Room.Theme)
	}
	p.theme = state.Room.Theme

	if p.seen > len(state.Messages) {
		p.seen = len(state.Messages)
	}
	for _, m := range state.Messages[p.seen:] {
		fmt.Printf("[%s] %s: %s\n", m.Timestamp.Format("15:04:05"), m.Author, m.Text)
	}
	p.seen = len(state.Messages)
}
