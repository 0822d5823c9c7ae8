// Package tray shows a system tray menu while padscope runs.
package tray

import (
	"os/exec"
	"runtime"
	"sync"

	"fyne.io/systray"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Tray manages the tray icon and menu.
type Tray struct {
	log          *zap.Logger
	url          string
	shutdown     func()
	once         sync.Once
	shuttingDown atomic.Bool
	menuOpen     *systray.MenuItem
	menuExit     *systray.MenuItem
}

// New returns a tray whose Exit item calls shutdown once. url is opened by
// the "Open Remote View" item; an empty url hides it.
func New(url string, shutdown func(), log *zap.Logger) *Tray {
	return &Tray{
		log:      log,
		url:      url,
		shutdown: shutdown,
	}
}

// Run blocks until Quit is called or Exit is clicked.
func (t *Tray) Run(icon []byte) {
	systray.Run(func() {
		t.onReady(icon)
	}, t.onExit)
}

// Quit removes the tray icon and makes Run return.
func (t *Tray) Quit() {
	if t.shuttingDown.CompareAndSwap(false, true) {
		systray.Quit()
	}
}

func (t *Tray) onReady(icon []byte) {
	if icon != nil {
		systray.SetIcon(icon)
	}
	systray.SetTitle("padscope")
	systray.SetTooltip("padscope game controller test")

	if t.url != "" {
		t.menuOpen = systray.AddMenuItem("Open Remote View", "Open the remote view in a browser")
	}
	t.menuExit = systray.AddMenuItem("Exit", "Quit padscope")

	go t.handleMenuClicks()
	t.log.Info("system tray ready")
}

func (t *Tray) handleMenuClicks() {
	var openCh chan struct{}
	if t.menuOpen != nil {
		openCh = t.menuOpen.ClickedCh
	}
	for {
		select {
		case <-openCh:
			if !t.shuttingDown.Load() {
				t.openBrowser()
			}
		case <-t.menuExit.ClickedCh:
			t.requestShutdown()
			t.Quit()
			return
		}
	}
}

func (t *Tray) requestShutdown() {
	t.once.Do(t.shutdown)
}

func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	t.log.Info("system tray exiting")
}

func (t *Tray) openBrowser() {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", t.url)
	case "darwin":
		cmd = exec.Command("open", t.url)
	default:
		cmd = exec.Command("xdg-open", t.url)
	}
	if err := cmd.Start(); err != nil {
		t.log.Warn("failed to open browser", zap.String("url", t.url), zap.Error(err))
	}
}
