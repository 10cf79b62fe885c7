package runner

import (
	"log"
	"os/exec"
	"syscall"

	expect "github.com/google/goexpect"
	"github.com/google/goterm/term"
	"github.com/kvz/logstreamer"
	"github.com/sirupsen/logrus"

	"gitlab.com/youtopia.earth/ops/snip-please/loggers"
)

// Run spawns the become command on a pty and feeds the password when
// please asks for it. Output is streamed to the logger.
func Run(cfg *Config) error {
	logger := cfg.GetLogger()

	if cfg.Command == "" {
		logger.Debug("empty become command, nothing to run")
		return nil
	}

	w := &loggers.Writer{Entry: logger, Level: logrus.InfoLevel}
	logStreamer := logstreamer.NewLogstreamer(log.New(w, "", 0), "", false)
	defer logStreamer.Close()

	ctx := cfg.GetContext()
	cmd := exec.CommandContext(ctx, cfg.GetShell(), "-c", cfg.Command)
	cmd.Dir = cfg.Dir
	if len(cfg.Env) > 0 {
		cmd.Env = cfg.Env
	}

	pty, err := term.OpenPTY()
	if err != nil {
		return err
	}
	var t term.Termios
	t.Raw()
	t.Set(pty.Slave)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = pty.Slave, pty.Slave, pty.Slave
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
	}

	logger.Debugf("spawning %s -c %q", cfg.GetShell(), cfg.Command)
	if err := cmd.Start(); err != nil {
		pty.Close()
		return err
	}

	e, ch, err := expect.SpawnGeneric(&expect.GenOptions{
		In:  pty.Master,
		Out: pty.Master,
		Wait: func() error {
			if err := cmd.Wait(); err != nil {
				pty.Slave.Close()
				return err
			}
			return pty.Slave.Close()
		},
		Close: func() error {
			pty.Master.Close()
			if cmd.Process != nil {
				return cmd.Process.Kill()
			}
			return nil
		},
		Check: func() bool {
			if cmd.Process == nil {
				return false
			}
			// Sending Signal 0 to a process returns nil if process can take a signal , something else if not.
			return cmd.Process.Signal(syscall.Signal(0)) == nil
		},
	}, cfg.GetTimeout(), expect.Tee(logStreamer))
	if err != nil {
		return err
	}
	defer e.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			logger.Debug(`closing process`)
			e.Close()
		case <-done:
		}
	}()

	if cfg.RequiresPromptScan {
		if out, err := Interact(e, cfg); err != nil {
			logger.Debugf("output before failure: %q", out)
			return err
		}
		logger.Debug("privilege escalation succeeded")
	}

	return <-ch
}
