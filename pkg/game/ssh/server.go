//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	DefaultAddress    = ":2222"
)

// SSHServer runs an independent blockfall client in a pseudo-terminal for
// every SSH session.
type SSHServer struct {
	ListenAddress string
	HostKeyFile   string

	// Binary is the blockfall client and Args are passed to it after the
	// player name.
	Binary string
	Args   []string

	server *ssh.Server
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

func (s *SSHServer) command(ctx context.Context, user string, term string) *exec.Cmd {
	args := append([]string{"--name", PlayerName(user)}, s.Args...)

	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", term))

	return cmd
}

func (s *SSHServer) handle(sshSession ssh.Session) {
	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		io.WriteString(sshSession, "failed to start blockfall: non-interactive terminals are not supported\n")

		sshSession.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, sshSession.User(), ptyReq.Term)

	f, err := pty.Start(cmd)
	if err != nil {
		log.Printf("failed to start client for %s: %s", sshSession.RemoteAddr(), err)
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))

		sshSession.Exit(1)
		return
	}
	defer f.Close()

	log.Printf("Started session for %s from %s", sshSession.User(), sshSession.RemoteAddr())

	setWinsize(f, ptyReq.Window.Width, ptyReq.Window.Height)
	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	cmd.Wait()

	log.Printf("Ended session for %s", sshSession.User())
}

// ListenAndServe blocks until the server is shut down.
func (s *SSHServer) ListenAndServe() error {
	if s.ListenAddress == "" {
		return errors.New("SSH server ListenAddress must be specified")
	}
	if s.Binary == "" {
		return errors.New("SSH server Binary must be specified")
	}

	s.server = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		err := s.server.SetOption(ssh.HostKeyFile(s.HostKeyFile))
		if err != nil {
			return fmt.Errorf("failed to load host key %s: %s", s.HostKeyFile, err)
		}
	}

	log.Printf("Listening for SSH connections on %s", s.ListenAddress)

	err := s.server.ListenAndServe()
	if err == ssh.ErrServerClosed {
		return nil
	}

	return err
}

// Shutdown stops accepting sessions and waits for the running ones to close
// or for ctx to expire.
func (s *SSHServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	return s.server.Shutdown(ctx)
}
