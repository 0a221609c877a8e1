// Command goviet-imed runs the Vietnamese input method engine as a
// D-Bus session-bus service, for a Fcitx5-style frontend to drive.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/username/goviet-ime/internal/dbusservice"
	"github.com/username/goviet-ime/internal/engine"
)

const (
	serviceName = "com.github.goviet.ime"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	svc    *dbusservice.Service
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine with default settings.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{
		svc:    dbusservice.NewService(),
		logger: logger,
	}
}

// ProcessKey handles key events from Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state)
// Output: handled (was key consumed), commitText (text to commit), preeditText (composition)
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	event := dbusservice.KeyEvent{
		KeySym:    keysym,
		Modifiers: modifiers,
	}

	result := e.svc.ProcessKey(event)

	if e.logger != nil {
		keyStr := fmt.Sprintf("0x%x", keysym)
		switch keysym {
		case dbusservice.KeyBackspace:
			keyStr = "Backspace"
		case dbusservice.KeySpace:
			keyStr = "Space"
		case dbusservice.KeyReturn:
			keyStr = "Enter"
		case dbusservice.KeyTab:
			keyStr = "Tab"
		case dbusservice.KeyEscape:
			keyStr = "Esc"
		case dbusservice.KeyDelete:
			keyStr = "Delete"
		case 0xff51:
			keyStr = "Left"
		case 0xff52:
			keyStr = "Up"
		case 0xff53:
			keyStr = "Right"
		case 0xff54:
			keyStr = "Down"
		case 0xff50:
			keyStr = "Home"
		case 0xff57:
			keyStr = "End"
		case 0xff55:
			keyStr = "PgUp"
		case 0xff56:
			keyStr = "PgDn"
		default:
			if keysym >= 0x0020 && keysym <= 0x007e {
				keyStr = fmt.Sprintf("%q", rune(keysym))
			}
		}

		modsStr := ""
		if modifiers&dbusservice.ModShift != 0 {
			modsStr += "Shift+"
		}
		if modifiers&dbusservice.ModControl != 0 {
			modsStr += "Ctrl+"
		}
		if modifiers&dbusservice.ModMod1 != 0 {
			modsStr += "Alt+"
		}

		e.logger.Printf("Type: %-15s | Preedit: %-15q | Commit: %-15q | Handled: %v",
			modsStr+keyStr, result.Preedit, result.CommitText, result.Handled)
	}

	return result.Handled, result.CommitText, result.Preedit, nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.svc.Reset()
	fmt.Println(">>> [GoViet] Engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.svc.SetEnabled(enabled)
	fmt.Printf(">>> [GoViet] Engine enabled: %v\n", enabled)
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.svc.GetPreedit(), nil
}

// SetInputMethod switches between Telex and VNI conventions.
func (e *InputEngine) SetInputMethod(name string) *dbus.Error {
	if name == "VNI" {
		e.svc.SetInputMethod(engine.VNI)
	} else {
		e.svc.SetInputMethod(engine.Telex)
	}
	fmt.Printf(">>> [GoViet] Input method: %s\n", name)
	return nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [GoViet] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [GoViet] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	inputEngine := NewInputEngine(logger)

	err = conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("GoViet-IME Backend is running!")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Printf("  Input Method: Telex\n")
	fmt.Printf("  Output Format: Unicode\n")
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	fmt.Println("\n>>> [GoViet] Shutting down...")
}
