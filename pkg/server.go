package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

// Server hosts the game center over ssh. Every session runs its own gameterm
// process inside a pty, so each visitor gets an independent shell.
type Server struct {
	*ssh.Server
	binary string
	log    *zap.Logger
}

func NewServer(cfg SSHConfig, logger *zap.Logger) (*Server, error) {
	if cfg.Binary == "" {
		return nil, errors.New("server: gameterm binary must be specified")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{binary: cfg.Binary, log: logger}
	s.Server = &ssh.Server{
		Addr:        cfg.Addr,
		IdleTimeout: cfg.IdleTimeout,
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

	if cfg.HostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(cfg.HostKey)); err != nil {
			return nil, fmt.Errorf("server: load host key: %w", err)
		}
	}
	return s, nil
}

// guestName labels a session in the logs.
func guestName(user string) string {
	if user != "" {
		return user + "@" + petname.Generate(2, "-")
	}
	return petname.Generate(2, "-")
}

// sessionEnv builds the environment of a session's gameterm process. It starts
// from the server's own environment; a visitor only gets to pick the locale
// and the terminal type, never the config or log locations.
func sessionEnv(client []string, term string) []string {
	env := make([]string, 0, len(os.Environ())+len(client)+1)
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "TERM=") {
			env = append(env, kv)
		}
	}
	for _, kv := range client {
		if name, _, _ := strings.Cut(kv, "="); name == "LANG" || strings.HasPrefix(name, "LC_") {
			env = append(env, kv)
		}
	}
	if term == "" {
		term = "xterm"
	}
	return append(env, "TERM="+term)
}

func (s *Server) handle(sess ssh.Session) {
	guest := guestName(sess.User())
	log := s.log.With(zap.String("guest", guest), zap.String("remote", sess.RemoteAddr().String()))

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		fmt.Fprintln(sess, "non-interactive terminals are not supported")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.binary)
	cmd.Env = sessionEnv(sess.Environ(), ptyReq.Term)

	f, err := pty.Start(cmd)
	if err != nil {
		log.Error("start pty", zap.Error(err))
		fmt.Fprintf(sess, "failed to initialize pseudo-terminal: %s\n", err)
		sess.Exit(1)
		return
	}
	log.Info("session started")

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)}); err != nil {
				log.Debug("resize pty", zap.Error(err))
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)
	if err := f.Close(); err != nil {
		log.Debug("close pty", zap.Error(err))
	}

	code := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else {
			code = 1
		}
		log.Warn("session ended with error", zap.Error(err))
	}
	sess.Exit(code)
	log.Info("session closed", zap.Int("code", code))
}
